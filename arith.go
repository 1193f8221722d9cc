// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksig

import "github.com/pkg/errors"

// ErrDivisionByZero is the cause of errors returned when a frequency, period
// or other divisor is zero.
//
var ErrDivisionByZero = errors.New("division by zero")

// SquareDuty is the high time to period ratio of a square wave.
//
const SquareDuty = 0.5

// CalculateFrequency returns the frequency in Hz of a clock with the given
// period in seconds: f = 1/T.
//
// Negative periods are not rejected and yield a negative frequency.
//
func CalculateFrequency(period float64) (float64, error) {
	if period == 0 {
		return 0, errors.Wrap(ErrDivisionByZero, "frequency of a zero period")
	}
	return 1.0 / period, nil
}

// CalculatePeriod returns the period in seconds of a clock with the given
// frequency in Hz: T = 1/f.
//
func CalculatePeriod(frequency float64) (float64, error) {
	if frequency == 0 {
		return 0, errors.Wrap(ErrDivisionByZero, "period of a zero frequency")
	}
	return 1.0 / frequency, nil
}

// DutyCyclePercentage returns the percentage of period during which the
// signal is high. The caller is responsible for passing highTime <= period.
//
func DutyCyclePercentage(highTime, period float64) (float64, error) {
	if period == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "duty cycle of high time %g over a zero period", highTime)
	}
	return highTime / period * 100, nil
}

// Params holds the derived parameters of a square wave clock.
//
type Params struct {
	Frequency float64 // Hz
	Period    float64 // seconds
	PeriodMs  float64 // milliseconds
	PeriodUs  float64 // microseconds
	HighTime  float64 // seconds
	LowTime   float64 // seconds
	DutyCycle float64 // percent
}

// Parameters computes the parameters of a clock running at the given
// frequency with a fixed 50% duty cycle.
//
func Parameters(frequency float64) (Params, error) {
	period, err := CalculatePeriod(frequency)
	if err != nil {
		return Params{}, err
	}
	high := period * SquareDuty
	duty, err := DutyCyclePercentage(high, period)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Frequency: frequency,
		Period:    period,
		PeriodMs:  period * 1e3,
		PeriodUs:  period * 1e6,
		HighTime:  high,
		LowTime:   period - high,
		DutyCycle: duty,
	}, nil
}
