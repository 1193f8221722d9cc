package report_test

import (
	"os"

	"github.com/db47h/clocksig/report"
)

func ExampleCompareClockSpeeds() {
	err := report.CompareClockSpeeds(os.Stdout, []report.Clock{
		{"Audio sample rate", 44100},
		{"Arduino", 16e6},
		{"CPU (1 GHz)", 1e9},
	})
	if err != nil {
		panic(err)
	}

	// Output:
	// Common Clock Frequencies:
	// Application           | Frequency       | Period
	// ----------------------|-----------------|------------------
	// Audio sample rate     | 44.1 kHz       | 22.676 µs
	// Arduino               | 16.0 MHz       | 62.500 ns
	// CPU (1 GHz)           | 1.0 GHz        | 1.000 ns
}
