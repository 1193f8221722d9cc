// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package report

import (
	"io"

	"github.com/db47h/clocksig"
	"github.com/pkg/errors"
)

// Tutorial holds the tables printed by the clock signals chapter.
//
type Tutorial struct {
	TestFrequencies []float64 // parameter blocks of Example 3
	Waveform        WaveformOptions
	EdgeCycles      uint
	DutyPeriod      float64
	DutyCases       []DutyCase
	ClockSpeeds     []Clock
	Scenarios       []Clock
	Applications    []string

	// Extra sections printed after the chapter summary.
	Harmonics       bool
	HarmonicSamples uint
	HarmonicCount   int
	FlipFlops       bool
	FlipFlopData    []bool
}

// DefaultTutorial returns the built-in chapter tables.
//
func DefaultTutorial() Tutorial {
	return Tutorial{
		TestFrequencies: []float64{1, 1000, 1e6, 100e6},
		Waveform: WaveformOptions{
			Cycles:          5,
			SamplesPerCycle: clocksig.DefaultSamplesPerCycle,
			Glyphs:          clocksig.UnicodeGlyphs,
		},
		EdgeCycles: 3,
		DutyPeriod: 1,
		DutyCases: []DutyCase{
			{"Square wave (50%)", 0.5},
			{"25% duty cycle", 0.25},
			{"75% duty cycle", 0.75},
			{"10% duty cycle", 0.1},
		},
		ClockSpeeds: []Clock{
			{"Slow clock", 1},
			{"Audio sample rate", 44100},
			{"Old PC (1 MHz)", 1e6},
			{"USB 2.0", 480e6},
			{"CPU (1 GHz)", 1e9},
			{"CPU (3.5 GHz)", 3.5e9},
		},
		Scenarios: []Clock{
			{"CPU at 2.5 GHz", 2.5e9},
			{"Arduino (16 MHz)", 16e6},
			{"USB 1.0 (12 Mbps)", 12e6},
			{"Standard UART (9600 baud)", 9600},
		},
		Applications: []string{
			"CPU synchronization",
			"Memory timing",
			"Serial communication (UART, SPI, I2C)",
			"USB data transfer",
			"Display refresh (VGA, HDMI)",
			"Analog-to-Digital conversion",
			"Timer/Counter operations",
			"State machine transitions",
		},
		HarmonicSamples: 64,
		HarmonicCount:   7,
		FlipFlopData: []bool{
			false, true, true, true,
			true, true, false, false,
			false, true, false, false,
		},
	}
}

func header(p *printer, n int, title string) error {
	p.printf("\n--- Example %d: %s ---\n", n, title)
	return p.err
}

// Run prints the whole chapter to w.
//
func (t Tutorial) Run(w io.Writer) error {
	p := &printer{w: w}
	p.lines(rule, "CHAPTER 13: Clock Signals", rule)
	if p.err != nil {
		return p.err
	}

	if err := header(p, 1, "Clock Signal Definition"); err != nil {
		return err
	}
	p.lines("", "A clock signal is a periodic square wave that oscillates",
		"between two voltage levels (typically 0V and 5V).",
		"", "Key characteristics:",
		"  • Periodic: Repeats at regular intervals",
		"  • Square wave: Sharp transitions",
		"  • Synchronizes digital circuit operations")

	if err := header(p, 2, "Frequency and Period Relationship"); err != nil {
		return err
	}
	if err := frequencyAndPeriod(p); err != nil {
		return err
	}
	if p.err != nil {
		return p.err
	}

	if err := header(p, 3, "Clock Signal Parameters"); err != nil {
		return err
	}
	for _, f := range t.TestFrequencies {
		if err := DisplayClockParameters(w, f); err != nil {
			return errors.Wrapf(err, "clock parameters for %s", clocksig.FormatFrequency(f))
		}
	}

	if err := header(p, 4, "Clock Signal Waveform"); err != nil {
		return err
	}
	if err := VisualizeClockSignal(w, t.Waveform); err != nil {
		return errors.Wrap(err, "waveform")
	}

	if err := header(p, 5, "Clock Edges"); err != nil {
		return err
	}
	p.lines("", "Rising Edge (↑): Transition from LOW (0) to HIGH (1)",
		"Falling Edge (↓): Transition from HIGH (1) to LOW (0)",
		"", "Digital circuits often trigger on edges:",
		"  • Positive edge-triggered: Acts on rising edge",
		"  • Negative edge-triggered: Acts on falling edge")
	if p.err != nil {
		return p.err
	}
	if err := SimulateClockEdges(w, t.EdgeCycles); err != nil {
		return err
	}

	if err := header(p, 6, "Duty Cycle"); err != nil {
		return err
	}
	if err := DutyCycleTable(w, t.DutyPeriod, t.DutyCases); err != nil {
		return errors.Wrap(err, "duty cycle table")
	}

	if err := header(p, 7, "Common Clock Frequencies"); err != nil {
		return err
	}
	if err := CompareClockSpeeds(w, t.ClockSpeeds); err != nil {
		return errors.Wrap(err, "clock speeds")
	}

	if err := header(p, 8, "Practical Clock Calculations"); err != nil {
		return err
	}
	if err := ScenarioTable(w, t.Scenarios); err != nil {
		return errors.Wrap(err, "scenarios")
	}

	if err := header(p, 9, "Clock Signal Applications"); err != nil {
		return err
	}
	if err := Applications(w, t.Applications); err != nil {
		return err
	}
	if err := KeyConcepts(w); err != nil {
		return err
	}

	if t.Harmonics {
		p.lines("", "--- Extra: Square Wave Harmonics ---")
		if p.err != nil {
			return p.err
		}
		if err := HarmonicsTable(w, t.HarmonicSamples, t.HarmonicCount); err != nil {
			return errors.Wrap(err, "harmonics")
		}
	}
	if t.FlipFlops {
		p.lines("", "--- Extra: Edge-Triggered Flip-Flops ---",
			"", "A D flip-flop copies its D input to Q only on its triggering edge.")
		if p.err != nil {
			return p.err
		}
		if err := FlipFlopTable(w, t.FlipFlopData); err != nil {
			return err
		}
	}
	return p.err
}

// frequencyAndPeriod prints the worked examples of Example 2.
func frequencyAndPeriod(p *printer) error {
	period := 0.001
	frequency, err := clocksig.CalculateFrequency(period)
	if err != nil {
		return err
	}
	p.printf("Given period: %s seconds (1 ms)\n", clocksig.FormatReal(period))
	p.printf("Frequency = 1/T = 1/%s = %s Hz (1 kHz)\n", clocksig.FormatReal(period), clocksig.FormatReal(frequency))

	p.lines("")
	frequency = 1e6
	period, err = clocksig.CalculatePeriod(frequency)
	if err != nil {
		return err
	}
	f := clocksig.FormatCount(frequency)
	p.printf("Given frequency: %s Hz (1 MHz)\n", f)
	p.printf("Period = 1/f = 1/%s = %.9f seconds\n", f, period)
	p.printf("%27s= %.3f microseconds\n", "", period*1e6)
	return nil
}
