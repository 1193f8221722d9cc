// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksig

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Harmonic is the amplitude of one harmonic of a clock signal.
//
type Harmonic struct {
	Order     int     // 1 is the fundamental
	Amplitude float64 // measured, for a 0/1 logic level signal
	Ideal     float64 // Fourier series amplitude of an ideal square wave
}

// Relative returns the amplitude of h relative to the fundamental f.
//
func (h Harmonic) Relative(f Harmonic) float64 {
	if f.Amplitude == 0 {
		return 0
	}
	return h.Amplitude / f.Amplitude
}

// IdealHarmonic returns the amplitude of the k-th harmonic of an ideal 0/1
// square wave with a 50% duty cycle: 2/(πk) for odd k, 0 for even k.
//
func IdealHarmonic(k int) float64 {
	if k <= 0 || k%2 == 0 {
		return 0
	}
	return 2 / (math.Pi * float64(k))
}

// Harmonics samples one cycle of a clock and returns the amplitudes of its
// first count harmonics.
//
// samplesPerCycle is rounded up to a power of two like in NewClock; count
// must be in the range [1, samplesPerCycle/2].
//
func Harmonics(samplesPerCycle uint, count int) ([]Harmonic, error) {
	c := NewClock(samplesPerCycle, 0)
	n := int(c.SPC())
	if count < 1 || count > n/2 {
		return nil, errors.Errorf("harmonic count %d out of range [1, %d] for %d samples per cycle", count, n/2, n)
	}

	seq := make([]float64, 0, n)
	c.Attach(func(s Sample) {
		if s.Level {
			seq = append(seq, 1)
		} else {
			seq = append(seq, 0)
		}
	})
	c.Run(1)

	coeff := fourier.NewFFT(n).Coefficients(nil, seq)
	out := make([]Harmonic, count)
	for k := range out {
		order := k + 1
		// the Nyquist bin has no negative frequency counterpart
		scale := 2.0
		if order == n/2 {
			scale = 1
		}
		out[k] = Harmonic{
			Order:     order,
			Amplitude: scale * cmplx.Abs(coeff[order]) / float64(n),
			Ideal:     IdealHarmonic(order),
		}
	}
	return out, nil
}
