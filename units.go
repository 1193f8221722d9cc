// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var grouping = message.NewPrinter(language.English)

// FormatGrouped formats v with prec decimals and thousands separators, as in
// 1,000,000 or 44.1.
//
func FormatGrouped(v float64, prec int) string {
	return grouping.Sprintf("%."+strconv.Itoa(prec)+"f", v)
}

// FormatReal formats v with the shortest representation that round-trips,
// always keeping a decimal point: 0.001, 1000.0.
//
func FormatReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// FormatCount formats a frequency as a grouped number of cycles per second,
// without decimals when integral: 2,500,000,000. Other values keep their
// shortest decimal representation: 1,234.5.
//
func FormatCount(v float64) string {
	prec := 0
	if v != math.Trunc(v) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		prec = len(s) - strings.IndexByte(s, '.') - 1
	}
	return FormatGrouped(v, prec)
}

// FormatPeriod formats a period in seconds using the largest unit among s, ms,
// µs and ns that keeps the value at or above 1.
//
func FormatPeriod(period float64) string {
	switch {
	case period >= 1:
		return fmt.Sprintf("%.3f s", period)
	case period >= 1e-3:
		return fmt.Sprintf("%.3f ms", period*1e3)
	case period >= 1e-6:
		return fmt.Sprintf("%.3f µs", period*1e6)
	default:
		return fmt.Sprintf("%.3f ns", period*1e9)
	}
}

// FormatFrequency formats a frequency in Hz using Hz, kHz, MHz or GHz.
//
func FormatFrequency(freq float64) string {
	switch {
	case freq < 1e3:
		return FormatCount(freq) + " Hz"
	case freq < 1e6:
		return FormatGrouped(freq/1e3, 1) + " kHz"
	case freq < 1e9:
		return FormatGrouped(freq/1e6, 1) + " MHz"
	default:
		return fmt.Sprintf("%.1f GHz", freq/1e9)
	}
}

// FormatScenarioPeriod formats a period like FormatPeriod but never uses
// seconds: a 1 Hz clock is 1000.000 ms.
//
func FormatScenarioPeriod(period float64) string {
	switch {
	case period >= 1e-3:
		return fmt.Sprintf("%.3f ms", period*1e3)
	case period >= 1e-6:
		return fmt.Sprintf("%.3f µs", period*1e6)
	default:
		return fmt.Sprintf("%.3f ns", period*1e9)
	}
}

// FormatScenarioFrequency formats a frequency like FormatFrequency but with
// whole MHz values and no grouping.
//
func FormatScenarioFrequency(freq float64) string {
	switch {
	case freq >= 1e9:
		return fmt.Sprintf("%.1f GHz", freq/1e9)
	case freq >= 1e6:
		return fmt.Sprintf("%.0f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%.1f kHz", freq/1e3)
	default:
		return strconv.FormatFloat(freq, 'f', -1, 64) + " Hz"
	}
}

var (
	frequencyUnits = map[string]float64{
		"":    1,
		"hz":  1,
		"khz": 1e3,
		"mhz": 1e6,
		"ghz": 1e9,
	}
	periodUnits = map[string]float64{
		"":   1,
		"s":  1,
		"ms": 1e-3,
		"us": 1e-6,
		"µs": 1e-6, // micro sign
		"μs": 1e-6, // greek mu
		"ns": 1e-9,
		"ps": 1e-12,
	}
)

// ParseFrequency parses a frequency with an optional unit, as in "16 MHz",
// "44.1kHz", "1,000,000" or "2.5e9". Unit names are case insensitive and Hz
// is assumed if missing.
//
func ParseFrequency(s string) (float64, error) {
	return parseQuantity(s, frequencyUnits, "frequency")
}

// ParsePeriod parses a period with an optional unit (s, ms, us, µs, ns, ps),
// as in "1 ms" or "0.5". Seconds are assumed if the unit is missing.
//
func ParsePeriod(s string) (float64, error) {
	return parseQuantity(s, periodUnits, "period")
}

func parseQuantity(s string, units map[string]float64, what string) (float64, error) {
	in := strings.TrimSpace(s)
	i := strings.IndexFunc(in, func(r rune) bool {
		return unicode.IsLetter(r) && r != 'e' && r != 'E' || unicode.IsSpace(r)
	})
	num, unit := in, ""
	if i >= 0 {
		num, unit = in[:i], strings.TrimSpace(in[i:])
	}
	if num == "" {
		return 0, errors.Errorf("invalid %s %q: missing value", what, s)
	}
	mul, ok := units[strings.ToLower(unit)]
	if !ok {
		return 0, errors.Errorf("invalid %s %q: unknown unit %q", what, s, unit)
	}
	v, err := strconv.ParseFloat(strings.NewReplacer(",", "", "_", "").Replace(num), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", what, s)
	}
	return v * mul, nil
}
