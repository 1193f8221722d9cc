// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

//go:build !linux && !darwin

package term

func width(fd uintptr) (int, bool) {
	return 0, false
}
