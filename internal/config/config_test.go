package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/db47h/clocksig"
	"github.com/db47h/clocksig/report"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(contents), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return p
}

func TestDefault_matchesTutorial(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
	got := Default().Tutorial()
	want := report.DefaultTutorial()
	// the default tutorial keeps extras disabled
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Default().Tutorial() = %+v\nexpected %+v", got, want)
	}
}

func TestLoad_overrides(t *testing.T) {
	p := writeTempConfig(t, `
parameters:
  frequencies: [16 MHz, "44.1kHz", 1_000]
waveform:
  cycles: 2
  ascii: true
duty_cycle:
  period: 10 ms
  cases:
    - description: quarter
      high_time: 2.5ms
clock_speeds:
  - name: Arduino
    frequency: 16MHz
extras:
  flip_flops:
    enable: true
    data: "0110 1"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tut := cfg.Tutorial()
	if !reflect.DeepEqual(tut.TestFrequencies, []float64{16e6, 44100, 1000}) {
		t.Errorf("frequencies = %v", tut.TestFrequencies)
	}
	if tut.Waveform.Cycles != 2 || tut.Waveform.SamplesPerCycle != clocksig.DefaultSamplesPerCycle {
		t.Errorf("waveform = %+v", tut.Waveform)
	}
	if tut.Waveform.Glyphs != clocksig.ASCIIGlyphs {
		t.Errorf("expected ASCII glyphs")
	}
	if tut.DutyPeriod != 0.01 || len(tut.DutyCases) != 1 || tut.DutyCases[0].HighTime != 0.0025 {
		t.Errorf("duty cycle = %v %+v", tut.DutyPeriod, tut.DutyCases)
	}
	if len(tut.ClockSpeeds) != 1 || tut.ClockSpeeds[0] != (report.Clock{Name: "Arduino", Hz: 16e6}) {
		t.Errorf("clock speeds = %+v", tut.ClockSpeeds)
	}
	// untouched sections keep their defaults
	def := report.DefaultTutorial()
	if !reflect.DeepEqual(tut.Scenarios, def.Scenarios) || tut.EdgeCycles != def.EdgeCycles {
		t.Errorf("defaults not preserved: %+v %d", tut.Scenarios, tut.EdgeCycles)
	}
	if !tut.FlipFlops || !reflect.DeepEqual(tut.FlipFlopData, []bool{false, true, true, false, true}) {
		t.Errorf("flip flops = %v %v", tut.FlipFlops, tut.FlipFlopData)
	}
}

func TestLoad_errors(t *testing.T) {
	td := []struct {
		name, yaml, err string
	}{
		{"zero frequency", "parameters:\n  frequencies: [0]\n", "parameters.frequencies[0]"},
		{"bad unit", "parameters:\n  frequencies: [10 parsecs]\n", "unknown unit"},
		{"negative cycles", "waveform:\n  cycles: -1\n", "waveform.cycles"},
		{"one sample", "waveform:\n  samples_per_cycle: 1\n", "waveform.samples_per_cycle"},
		{"edges", "edges:\n  cycles: -2\n", "edges.cycles"},
		{"zero period", "duty_cycle:\n  period: 0\n", "duty_cycle.period"},
		{"high time", "duty_cycle:\n  cases:\n    - description: over\n      high_time: 2\n", `"over": high_time`},
		{"unnamed clock", "scenarios:\n  - frequency: 1 MHz\n", "scenarios[0]: name is required"},
		{"stopped clock", "clock_speeds:\n  - name: stopped\n    frequency: 0 Hz\n", `clock_speeds[0] "stopped"`},
		{"harmonics", "extras:\n  harmonics:\n    enable: true\n    samples_per_cycle: 8\n    count: 5\n", "[1, 4]"},
		{"bits", "extras:\n  flip_flops:\n    data: 012\n", "invalid bit"},
		{"frequency list", "clock_speeds:\n  - name: x\n    frequency: [1]\n", "must be a scalar"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, d.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), d.err) {
				t.Fatalf("error %q does not contain %q", err, d.err)
			}
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestMarshal_roundTrip(t *testing.T) {
	def := Default()
	def.Extras.FlipFlops.Enable = true
	b, err := Marshal(def)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, def) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", cfg, def)
	}
}
