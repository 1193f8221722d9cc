// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksig

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Glyphs is the pair of characters used to draw the high and low levels of a
// waveform.
//
type Glyphs struct {
	High rune
	Low  rune
}

// Glyph sets.
//
var (
	UnicodeGlyphs = Glyphs{High: '▄', Low: '▁'}
	ASCIIGlyphs   = Glyphs{High: '-', Low: '_'}
)

// DefaultSamplesPerCycle renders each clock cycle as two 10 glyph runs.
//
const DefaultSamplesPerCycle = 20

// Levels returns the logic level of each sample of cycles clock cycles, each
// cycle being sampled samplesPerCycle times. The first samplesPerCycle/2
// samples of a cycle are high, the remaining ones are low.
//
func Levels(cycles, samplesPerCycle int) ([]bool, error) {
	if cycles < 0 {
		return nil, errors.Errorf("negative cycle count %d", cycles)
	}
	if samplesPerCycle < 2 {
		return nil, errors.Errorf("need at least 2 samples per cycle, got %d", samplesPerCycle)
	}
	high := samplesPerCycle / 2
	out := make([]bool, cycles*samplesPerCycle)
	for i := range out {
		out[i] = i%samplesPerCycle < high
	}
	return out, nil
}

// Run returns a run of n high or low glyphs.
//
func (g Glyphs) Run(high bool, n int) string {
	r := g.Low
	if high {
		r = g.High
	}
	return strings.Repeat(string(r), n)
}

// Waveform renders cycles clock cycles as a string of glyphs.
//
func Waveform(cycles, samplesPerCycle int, g Glyphs) (string, error) {
	lv, err := Levels(cycles, samplesPerCycle)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(lv) * utf8.UTFMax)
	for _, l := range lv {
		if l {
			b.WriteRune(g.High)
		} else {
			b.WriteRune(g.Low)
		}
	}
	return b.String(), nil
}

// Wrap splits s into lines of at most width runes. If width is less than 1,
// s is returned as a single line.
//
func Wrap(s string, width int) []string {
	if width < 1 || utf8.RuneCountInString(s) <= width {
		return []string{s}
	}
	var (
		lines []string
		n     int
		start int
	)
	for i := range s {
		if n == width {
			lines = append(lines, s[start:i])
			start, n = i, 0
		}
		n++
	}
	return append(lines, s[start:])
}
