// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package waveplot renders clock waveforms as image files.
package waveplot

import (
	"github.com/db47h/clocksig"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Points returns the vertices of the square wave drawn for the given clock
// cycles. The x axis is in clock cycles, the y axis is the logic level.
//
func Points(cycles, samplesPerCycle int) (plotter.XYs, error) {
	levels, err := clocksig.Levels(cycles, samplesPerCycle)
	if err != nil {
		return nil, err
	}
	dx := 1 / float64(samplesPerCycle)
	xys := make(plotter.XYs, 0, 2*len(levels))
	for i, l := range levels {
		y := 0.0
		if l {
			y = 1
		}
		x := float64(i) * dx
		xys = append(xys, plotter.XY{X: x, Y: y}, plotter.XY{X: x + dx, Y: y})
	}
	return xys, nil
}

// Save plots cycles clock cycles to path. The image format is taken from the
// file extension (png, svg, pdf, eps...).
//
func Save(path string, cycles, samplesPerCycle int) error {
	xys, err := Points(cycles, samplesPerCycle)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "Clock Signal"
	p.X.Label.Text = "cycles"
	p.Y.Label.Text = "level"
	p.Y.Min, p.Y.Max = -0.25, 1.25

	if err = plotutil.AddLines(p, "CLK", xys); err != nil {
		return errors.Wrap(err, "plot waveform")
	}
	w := vg.Length(cycles+1) * vg.Inch
	if w < 4*vg.Inch {
		w = 4 * vg.Inch
	}
	return errors.Wrapf(p.Save(w, 2*vg.Inch, path), "save %s", path)
}
