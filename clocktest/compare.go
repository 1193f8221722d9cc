// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package clocktest provides utility functions for testing clock computations
// and reports.
//
package clocktest

import (
	"math"
	"strings"
	"testing"

	"github.com/db47h/clocksig"
)

// Tolerance is the default relative tolerance used by Approx.
//
const Tolerance = 1e-9

// Approx returns true if a and b are equal within the relative tolerance tol.
// If either value is exactly zero, tol is used as an absolute tolerance.
//
func Approx(a, b, tol float64) bool {
	if a == b {
		return true
	}
	d := math.Abs(a - b)
	if a == 0 || b == 0 {
		return d <= tol
	}
	return d <= tol*math.Max(math.Abs(a), math.Abs(b))
}

// CheckApprox fails the test if got is not within Tolerance of want.
//
func CheckApprox(t *testing.T, what string, got, want float64) {
	t.Helper()
	if !Approx(got, want, Tolerance) {
		t.Errorf("%s = %v, expected %v", what, got, want)
	}
}

// Lines splits a report output into lines, dropping the final empty line of
// newline terminated output.
//
func Lines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

// CompareLines compares report output line by line and reports the first
// mismatches.
//
func CompareLines(t *testing.T, got string, want ...string) {
	t.Helper()
	gl := Lines(got)
	for i := 0; i < len(gl) || i < len(want); i++ {
		var g, w string
		if i < len(gl) {
			g = gl[i]
		}
		if i < len(want) {
			w = want[i]
		}
		if g != w {
			t.Errorf("line %d:\n\tgot  %q\n\twant %q", i+1, g, w)
		}
	}
	if len(gl) != len(want) {
		t.Errorf("got %d lines, expected %d", len(gl), len(want))
	}
}

// CompareEdges steps a clock once per element of want and checks that
// the sampled levels and edges match want.
//
func CompareEdges(t *testing.T, c *clocksig.Clock, want []clocksig.Sample) {
	t.Helper()
	var got []clocksig.Sample
	c.Attach(func(s clocksig.Sample) { got = append(got, s) })
	for range want {
		c.Step()
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: got %+v, expected %+v", i, got[i], want[i])
		}
	}
}
