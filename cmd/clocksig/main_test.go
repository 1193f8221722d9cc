package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/clocksig"
	"github.com/db47h/clocksig/clocktest"
	"github.com/pkg/errors"
)

func TestRun_tutorial(t *testing.T) {
	want, err := os.ReadFile("../../report/testdata/tutorial.golden")
	if err != nil {
		t.Fatal(err)
	}
	var out, stderr bytes.Buffer
	if err = run(nil, &out, &stderr); err != nil {
		t.Fatal(err)
	}
	clocktest.CompareLines(t, out.String(), clocktest.Lines(string(want))...)
}

func TestRun_frequencies(t *testing.T) {
	var out, stderr bytes.Buffer
	if err := run([]string{"1kHz"}, &out, &stderr); err != nil {
		t.Fatal(err)
	}
	clocktest.CompareLines(t, out.String(),
		"",
		"Clock Signal Parameters:",
		"  Frequency:    1,000 Hz",
		"  Period:       0.001000000 seconds",
		"                1.000000 milliseconds",
		"                1000.000 microseconds",
		"  Duty Cycle:   50.0% (square wave)",
		"  High Time:    0.500000 ms",
		"  Low Time:     0.500000 ms",
	)
}

func TestRun_asciiWrapped(t *testing.T) {
	var out, stderr bytes.Buffer
	if err := run([]string{"-ascii", "-width", "40"}, &out, &stderr); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "High: ----------\n") || !strings.Contains(s, "Low:  __________\n") {
		t.Error("ASCII legend not found")
	}
	wave := strings.Repeat("-", 10) + strings.Repeat("_", 10)
	if !strings.Contains(s, "\n"+wave+wave+"\n"+wave+wave+"\n"+wave+"\n") {
		t.Error("waveform not wrapped at 40 columns")
	}
}

func TestRun_config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "clocksig.yaml")
	err := os.WriteFile(cfg, []byte("parameters:\n  frequencies: [2 Hz]\nextras:\n  flip_flops:\n    enable: true\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}
	plot := filepath.Join(dir, "clock.png")
	var out, stderr bytes.Buffer
	if err = run([]string{"-config", cfg, "-plot", plot}, &out, &stderr); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "  Frequency:    2 Hz\n") {
		t.Error("configured frequency not printed")
	}
	if strings.Contains(s, "  Frequency:    1,000,000 Hz\n") {
		t.Error("default frequencies not replaced")
	}
	if !strings.Contains(s, "--- Extra: Edge-Triggered Flip-Flops ---") {
		t.Error("flip-flop section missing")
	}
	if strings.Contains(s, "--- Extra: Square Wave Harmonics ---") {
		t.Error("harmonics section printed")
	}
	if fi, err := os.Stat(plot); err != nil || fi.Size() == 0 {
		t.Errorf("plot not written: %v", err)
	}
}

func TestRun_dumpConfig(t *testing.T) {
	var out, stderr bytes.Buffer
	if err := run([]string{"-dump-config"}, &out, &stderr); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"parameters:", "duty_cycle:", "name: Arduino (16 MHz)", "flip_flops:"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("dump does not contain %q", s)
		}
	}
}

func TestRun_errors(t *testing.T) {
	var out, stderr bytes.Buffer
	err := run([]string{"0"}, &out, &stderr)
	if errors.Cause(err) != clocksig.ErrDivisionByZero {
		t.Errorf("zero frequency: got %v", err)
	}
	if err = run([]string{"12 parsecs"}, &out, &stderr); err == nil {
		t.Error("expected error for unknown unit")
	}
	if err = run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &out, &stderr); err == nil {
		t.Error("expected error for missing config")
	}
	if err = run([]string{"-nope"}, &out, &stderr); err == nil {
		t.Error("expected error for unknown flag")
	}
}
