package clocksig_test

import (
	"testing"

	cs "github.com/db47h/clocksig"
	"github.com/db47h/clocksig/clocktest"
)

func TestFormatFrequency(t *testing.T) {
	td := []struct {
		f    float64
		want string
	}{
		{1, "1 Hz"},
		{0.5, "0.5 Hz"},
		{999, "999 Hz"},
		{44100, "44.1 kHz"},
		{1e6, "1.0 MHz"},
		{480e6, "480.0 MHz"},
		{1e9, "1.0 GHz"},
		{3.5e9, "3.5 GHz"},
	}
	for _, d := range td {
		if got := cs.FormatFrequency(d.f); got != d.want {
			t.Errorf("FormatFrequency(%v) = %q, expected %q", d.f, got, d.want)
		}
	}
}

func TestFormatPeriod(t *testing.T) {
	td := []struct {
		p    float64
		want string
	}{
		{1, "1.000 s"},
		{1.0 / 44100, "22.676 µs"},
		{1e-3, "1.000 ms"},
		{1e-6, "1.000 µs"},
		{1e-9, "1.000 ns"},
		{1 / 3.5e9, "0.286 ns"},
	}
	for _, d := range td {
		if got := cs.FormatPeriod(d.p); got != d.want {
			t.Errorf("FormatPeriod(%v) = %q, expected %q", d.p, got, d.want)
		}
	}
}

func TestFormatScenario(t *testing.T) {
	td := []struct {
		f          float64
		freq, per  string
	}{
		{2.5e9, "2.5 GHz", "0.400 ns"},
		{16e6, "16 MHz", "62.500 ns"},
		{12e6, "12 MHz", "83.333 ns"},
		{9600, "9.6 kHz", "104.167 µs"},
		{1, "1 Hz", "1000.000 ms"},
	}
	for _, d := range td {
		if got := cs.FormatScenarioFrequency(d.f); got != d.freq {
			t.Errorf("FormatScenarioFrequency(%v) = %q, expected %q", d.f, got, d.freq)
		}
		if got := cs.FormatScenarioPeriod(1 / d.f); got != d.per {
			t.Errorf("FormatScenarioPeriod(1/%v) = %q, expected %q", d.f, got, d.per)
		}
	}
}

func TestFormatNumbers(t *testing.T) {
	for v, want := range map[float64]string{2.5e9: "2,500,000,000", 1234.5: "1,234.5", 9600: "9,600", 0.25: "0.25"} {
		if got := cs.FormatCount(v); got != want {
			t.Errorf("FormatCount(%v) = %q, expected %q", v, got, want)
		}
	}
	if got := cs.FormatGrouped(1234.56, 1); got != "1,234.6" {
		t.Errorf("FormatGrouped = %q", got)
	}
	for v, want := range map[float64]string{0.001: "0.001", 1000: "1000.0", 1e6: "1000000.0"} {
		if got := cs.FormatReal(v); got != want {
			t.Errorf("FormatReal(%v) = %q, expected %q", v, got, want)
		}
	}
}

func TestParseFrequency(t *testing.T) {
	td := []struct {
		in   string
		want float64
		err  bool
	}{
		{"16 MHz", 16e6, false},
		{"44.1kHz", 44100, false},
		{"2.5GHz", 2.5e9, false},
		{"1,000,000", 1e6, false},
		{"2.5e9", 2.5e9, false},
		{" 1 hz ", 1, false},
		{"10 parsecs", 0, true},
		{"MHz", 0, true},
		{"1.2.3 Hz", 0, true},
	}
	for _, d := range td {
		got, err := cs.ParseFrequency(d.in)
		if d.err {
			if err == nil {
				t.Errorf("ParseFrequency(%q): expected error, got %v", d.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFrequency(%q): %v", d.in, err)
			continue
		}
		clocktest.CheckApprox(t, "ParseFrequency("+d.in+")", got, d.want)
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]float64{
		"1 ms":  1e-3,
		"0.5":   0.5,
		"250ns": 250e-9,
		"1µs":   1e-6,
		"3 us":  3e-6,
	} {
		got, err := cs.ParsePeriod(in)
		if err != nil {
			t.Errorf("ParsePeriod(%q): %v", in, err)
			continue
		}
		clocktest.CheckApprox(t, "ParsePeriod("+in+")", got, want)
	}
	if _, err := cs.ParsePeriod("1 Hz"); err == nil {
		t.Error("expected error for frequency unit")
	}
}
