// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package clocksig provides the arithmetic and the tools needed to explain
digital clock signals: frequency and period conversions, duty cycle, a
stepped square wave clock with edge detection, edge-triggered flip-flops,
waveform rendering and harmonic analysis.

The report package builds a printable tutorial on top of it.

All computations are plain float64 arithmetic. Functions that divide return
an error whose cause is ErrDivisionByZero when given a zero divisor.
*/
package clocksig
