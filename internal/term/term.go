// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package term queries the terminal attached to a file descriptor.
package term

// Width returns the width in columns of the terminal open on fd. ok is false
// if fd is not a terminal or if its size cannot be determined.
//
func Width(fd uintptr) (cols int, ok bool) {
	return width(fd)
}
