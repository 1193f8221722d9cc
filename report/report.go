// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package report prints the sections of the clock signals tutorial.
//
// Every section writes plain UTF-8 text to an io.Writer and returns the first
// write or arithmetic error encountered.
//
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/db47h/clocksig"
)

// Clock is a named clock frequency.
//
type Clock struct {
	Name string
	Hz   float64
}

// DutyCase is a named high time used in the duty cycle table.
//
type DutyCase struct {
	Description string
	HighTime    float64 // seconds
}

// WaveformOptions configures VisualizeClockSignal.
//
type WaveformOptions struct {
	Cycles          int
	SamplesPerCycle int
	Glyphs          clocksig.Glyphs
	Width           int // wrap the waveform at Width glyphs, 0 for no wrapping
}

// printer is an io.Writer wrapper that remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// lines prints each line followed by a newline.
func (p *printer) lines(ls ...string) {
	for _, l := range ls {
		p.printf("%s\n", l)
	}
}

var rule = strings.Repeat("=", 60)

// DisplayClockParameters prints the period, its conversions to ms and µs, and
// the high and low times of a square wave clock at the given frequency.
//
func DisplayClockParameters(w io.Writer, frequency float64) error {
	prm, err := clocksig.Parameters(frequency)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.lines("", "Clock Signal Parameters:")
	p.printf("  Frequency:    %s Hz\n", clocksig.FormatGrouped(prm.Frequency, 0))
	p.printf("  Period:       %.9f seconds\n", prm.Period)
	p.printf("                %.6f milliseconds\n", prm.PeriodMs)
	p.printf("                %.3f microseconds\n", prm.PeriodUs)
	p.printf("  Duty Cycle:   %.1f%% (square wave)\n", prm.DutyCycle)
	p.printf("  High Time:    %.6f ms\n", prm.HighTime*1e3)
	p.printf("  Low Time:     %.6f ms\n", prm.LowTime*1e3)
	return p.err
}

// VisualizeClockSignal prints a glyph rendering of a clock waveform.
//
func VisualizeClockSignal(w io.Writer, o WaveformOptions) error {
	wave, err := clocksig.Waveform(o.Cycles, o.SamplesPerCycle, o.Glyphs)
	if err != nil {
		return err
	}
	high := o.SamplesPerCycle / 2
	p := &printer{w: w}
	p.lines("", "Clock Signal Visualization:")
	p.printf("High: %s\n", o.Glyphs.Run(true, high))
	p.printf("Low:  %s\n", o.Glyphs.Run(false, o.SamplesPerCycle-high))
	p.lines("")
	p.lines(clocksig.Wrap(wave, o.Width)...)
	p.printf("\n%d complete clock cycles shown\n", o.Cycles)
	return p.err
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SimulateClockEdges prints the level of a clock at each time step for the
// given number of cycles, marking rising and falling edges.
//
func SimulateClockEdges(w io.Writer, cycles uint) error {
	p := &printer{w: w}
	p.lines("", "Clock Edges:", "Time | State | Edge", "-----|-------|-------------")
	for _, s := range clocksig.EdgeTable(cycles) {
		p.printf(" %d   |   %d   |", s.Step, bit(s.Level))
		if s.Edge != clocksig.NoEdge {
			p.printf(" %s", s.Edge)
		}
		p.lines("")
	}
	return p.err
}

// CompareClockSpeeds prints a table of clock frequencies and their periods.
//
func CompareClockSpeeds(w io.Writer, speeds []Clock) error {
	p := &printer{w: w}
	p.lines("", "Common Clock Frequencies:",
		"Application           | Frequency       | Period",
		"----------------------|-----------------|------------------")
	for _, c := range speeds {
		period, err := clocksig.CalculatePeriod(c.Hz)
		if err != nil {
			return err
		}
		p.printf("%-20s  | %-14s | %s\n", c.Name, clocksig.FormatFrequency(c.Hz), clocksig.FormatPeriod(period))
	}
	return p.err
}

func plural(v float64, unit string) string {
	if v == 1 {
		return "1 " + unit
	}
	return clocksig.FormatReal(v) + " " + unit + "s"
}

// DutyCycleTable prints the duty cycle of each case for the given period.
//
func DutyCycleTable(w io.Writer, period float64, cases []DutyCase) error {
	p := &printer{w: w}
	p.lines("", "Duty Cycle = (High Time / Period) × 100%")
	p.printf("\nDuty Cycle Examples (Period = %s):\n", plural(period, "second"))
	p.lines("Description        | High Time | Duty Cycle",
		"-------------------|-----------|------------")
	for _, c := range cases {
		duty, err := clocksig.DutyCyclePercentage(c.HighTime, period)
		if err != nil {
			return err
		}
		p.printf("%-18s | %8.2fs | %6.1f%%\n", c.Description, c.HighTime, duty)
	}
	return p.err
}

// ScenarioTable prints practical clock calculations.
//
func ScenarioTable(w io.Writer, scenarios []Clock) error {
	p := &printer{w: w}
	p.lines("", "Scenario              | Frequency    | Period         | Cycles/sec",
		"----------------------|--------------|----------------|-------------")
	for _, s := range scenarios {
		period, err := clocksig.CalculatePeriod(s.Hz)
		if err != nil {
			return err
		}
		p.printf("%-20s  | %-11s | %-14s | %s\n", s.Name,
			clocksig.FormatScenarioFrequency(s.Hz), clocksig.FormatScenarioPeriod(period), clocksig.FormatCount(s.Hz))
	}
	return p.err
}

// Applications prints a numbered list of clock signal applications.
//
func Applications(w io.Writer, apps []string) error {
	p := &printer{w: w}
	p.lines("", "Clock signals are used in:")
	for i, a := range apps {
		p.printf("  %d. %s\n", i+1, a)
	}
	return p.err
}

// KeyConcepts prints the chapter summary.
//
func KeyConcepts(w io.Writer) error {
	p := &printer{w: w}
	p.lines("", rule,
		"Key Concepts:",
		"- Clock signal: Periodic square wave",
		"- Frequency (f): Cycles per second (Hz)",
		"- Period (T): Time for one cycle (seconds)",
		"- Relationship: f = 1/T",
		"- Rising edge: 0→1 transition",
		"- Falling edge: 1→0 transition",
		"- Duty cycle: Percentage of time HIGH",
		rule)
	return p.err
}

// HarmonicsTable prints the harmonic content of a sampled clock next to the
// ideal square wave Fourier series.
//
func HarmonicsTable(w io.Writer, samplesPerCycle uint, count int) error {
	hs, err := clocksig.Harmonics(samplesPerCycle, count)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.lines("", "A square wave is the sum of its odd harmonics:",
		"x(t) = 1/2 + 2/π (sin ωt + sin 3ωt / 3 + sin 5ωt / 5 + ...)")
	p.printf("\nHarmonic content (%d samples per cycle):\n", clocksig.NewClock(samplesPerCycle, 0).SPC())
	p.lines("Harmonic | Amplitude | Ideal 2/(πk) | Relative",
		"---------|-----------|--------------|---------")
	for _, h := range hs {
		p.printf("%8d | %9.4f | %12.4f | %7.1f%%\n", h.Order, h.Amplitude, h.Ideal, h.Relative(hs[0])*100)
	}
	return p.err
}

// FlipFlopTable drives a positive and a negative edge-triggered D flip-flop
// from the same 4 step clock, changing the data input on every step, and
// prints their outputs.
//
func FlipFlopTable(w io.Writer, data []bool) error {
	var d bool
	in := func() bool { return d }
	pos := &clocksig.DFF{Trigger: clocksig.Rising, D: in}
	neg := &clocksig.DFF{Trigger: clocksig.Falling, D: in}

	p := &printer{w: w}
	p.lines("", "Time | CLK | D | Q (↑ triggered) | Q (↓ triggered)",
		"-----|-----|---|-----------------|----------------")
	c := clocksig.EdgeClock()
	c.Attach(pos.Probe, neg.Probe, func(s clocksig.Sample) {
		p.printf(" %-4d|  %d  | %d |        %d        |        %d", s.Step, bit(s.Level), bit(d), bit(pos.Q()), bit(neg.Q()))
		if s.Edge != clocksig.NoEdge {
			p.printf("        %s", s.Edge)
		}
		p.lines("")
	})
	for _, v := range data {
		d = v
		c.Step()
	}
	return p.err
}
