// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the tables of the clock signals tutorial from YAML.
package config

import (
	"os"
	"strings"

	"github.com/db47h/clocksig"
	"github.com/db47h/clocksig/report"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every table of the tutorial. Sections absent from a file
// loaded with Load or Parse keep their Default values.
//
type Config struct {
	Parameters  ParametersConfig `yaml:"parameters"`
	Waveform    WaveformConfig   `yaml:"waveform"`
	Edges       EdgesConfig      `yaml:"edges"`
	DutyCycle   DutyCycleConfig  `yaml:"duty_cycle"`
	ClockSpeeds []ClockConfig    `yaml:"clock_speeds"`
	Scenarios   []ClockConfig    `yaml:"scenarios"`
	Apps        []string         `yaml:"applications"`
	Extras      ExtrasConfig     `yaml:"extras"`
}

// ParametersConfig lists the frequencies of the clock parameters example.
//
type ParametersConfig struct {
	Frequencies []Hertz `yaml:"frequencies"`
}

// WaveformConfig configures the waveform drawing.
//
type WaveformConfig struct {
	Cycles          int  `yaml:"cycles"`
	SamplesPerCycle int  `yaml:"samples_per_cycle"`
	ASCII           bool `yaml:"ascii"`
}

// EdgesConfig sets the number of cycles of the clock edges table.
//
type EdgesConfig struct {
	Cycles int `yaml:"cycles"`
}

// DutyCycleConfig is the period and the high times of the duty cycle table.
//
type DutyCycleConfig struct {
	Period Seconds          `yaml:"period"`
	Cases  []DutyCaseConfig `yaml:"cases"`
}

// DutyCaseConfig is one row of the duty cycle table.
//
type DutyCaseConfig struct {
	Description string  `yaml:"description"`
	HighTime    Seconds `yaml:"high_time"`
}

// ClockConfig is a named clock of the clock speeds and scenario tables.
//
type ClockConfig struct {
	Name      string `yaml:"name"`
	Frequency Hertz  `yaml:"frequency"`
}

// ExtrasConfig enables the sections printed after the chapter summary.
//
type ExtrasConfig struct {
	Harmonics HarmonicsConfig `yaml:"harmonics"`
	FlipFlops FlipFlopsConfig `yaml:"flip_flops"`
}

// HarmonicsConfig configures the square wave harmonics table. Count is at
// most half the samples per cycle rounded up to a power of two.
//
type HarmonicsConfig struct {
	Enable          bool `yaml:"enable"`
	SamplesPerCycle int  `yaml:"samples_per_cycle"`
	Count           int  `yaml:"count"`
}

// FlipFlopsConfig sets the D input sequence of the flip-flop table, one bit
// per clock step.
//
type FlipFlopsConfig struct {
	Enable bool `yaml:"enable"`
	Data   Bits `yaml:"data"`
}

// Hertz is a frequency that can be written as a number or with a unit, as in
// "16 MHz".
//
type Hertz float64

// UnmarshalYAML implements yaml.Unmarshaler.
//
func (h *Hertz) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: frequency must be a scalar", n.Line)
	}
	v, err := clocksig.ParseFrequency(n.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", n.Line)
	}
	*h = Hertz(v)
	return nil
}

// Seconds is a duration that can be written as a number of seconds or with a
// unit, as in "250 ms".
//
type Seconds float64

// UnmarshalYAML implements yaml.Unmarshaler.
//
func (s *Seconds) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: duration must be a scalar", n.Line)
	}
	v, err := clocksig.ParsePeriod(n.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", n.Line)
	}
	*s = Seconds(v)
	return nil
}

// Bits is a sequence of logic levels written as a string of 0 and 1. Spaces
// are ignored: "0111 1100".
//
type Bits []bool

// UnmarshalYAML implements yaml.Unmarshaler.
//
func (b *Bits) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: bits must be a string of 0 and 1", n.Line)
	}
	var out Bits
	for _, r := range n.Value {
		switch r {
		case '0':
			out = append(out, false)
		case '1':
			out = append(out, true)
		case ' ', '_':
		default:
			return errors.Errorf("line %d: invalid bit %q", n.Line, r)
		}
	}
	*b = out
	return nil
}

// MarshalYAML implements yaml.Marshaler. Bits are written in groups of 4.
//
func (b Bits) MarshalYAML() (interface{}, error) {
	var s strings.Builder
	for i, v := range b {
		if i > 0 && i%4 == 0 {
			s.WriteByte(' ')
		}
		if v {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String(), nil
}

// Default returns the configuration of the built-in tutorial.
//
func Default() Config {
	t := report.DefaultTutorial()
	cfg := Config{
		Waveform: WaveformConfig{
			Cycles:          t.Waveform.Cycles,
			SamplesPerCycle: t.Waveform.SamplesPerCycle,
		},
		Edges:     EdgesConfig{Cycles: int(t.EdgeCycles)},
		DutyCycle: DutyCycleConfig{Period: Seconds(t.DutyPeriod)},
		Apps:      append([]string(nil), t.Applications...),
		Extras: ExtrasConfig{
			Harmonics: HarmonicsConfig{
				SamplesPerCycle: int(t.HarmonicSamples),
				Count:           t.HarmonicCount,
			},
			FlipFlops: FlipFlopsConfig{Data: append(Bits(nil), t.FlipFlopData...)},
		},
	}
	for _, f := range t.TestFrequencies {
		cfg.Parameters.Frequencies = append(cfg.Parameters.Frequencies, Hertz(f))
	}
	for _, c := range t.DutyCases {
		cfg.DutyCycle.Cases = append(cfg.DutyCycle.Cases, DutyCaseConfig{c.Description, Seconds(c.HighTime)})
	}
	cfg.ClockSpeeds = clockConfigs(t.ClockSpeeds)
	cfg.Scenarios = clockConfigs(t.Scenarios)
	return cfg
}

func clockConfigs(cs []report.Clock) []ClockConfig {
	out := make([]ClockConfig, len(cs))
	for i, c := range cs {
		out[i] = ClockConfig{c.Name, Hertz(c.Hz)}
	}
	return out
}

// Load reads the YAML configuration file at path over the default
// configuration and validates the result. Sections absent from the file keep
// their default values.
//
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(b)
}

// Parse parses a YAML configuration over the default configuration and
// validates the result.
//
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal returns the YAML encoding of cfg.
//
func Marshal(cfg Config) ([]byte, error) {
	b, err := yaml.Marshal(cfg)
	return b, errors.Wrap(err, "marshal config")
}

func checkClocks(name string, cs []ClockConfig) error {
	for i, c := range cs {
		if c.Name == "" {
			return errors.Errorf("%s[%d]: name is required", name, i)
		}
		if c.Frequency <= 0 {
			return errors.Errorf("%s[%d] %q: frequency must be > 0", name, i, c.Name)
		}
	}
	return nil
}

// Validate checks that all values can be used by the tutorial.
//
func (c Config) Validate() error {
	for i, f := range c.Parameters.Frequencies {
		if f <= 0 {
			return errors.Errorf("parameters.frequencies[%d]: frequency must be > 0", i)
		}
	}
	if c.Waveform.Cycles < 0 {
		return errors.New("waveform.cycles must be >= 0")
	}
	if c.Waveform.SamplesPerCycle < 2 {
		return errors.New("waveform.samples_per_cycle must be >= 2")
	}
	if c.Edges.Cycles < 0 {
		return errors.New("edges.cycles must be >= 0")
	}
	if c.DutyCycle.Period <= 0 {
		return errors.New("duty_cycle.period must be > 0")
	}
	for i, d := range c.DutyCycle.Cases {
		if d.HighTime < 0 || d.HighTime > c.DutyCycle.Period {
			return errors.Errorf("duty_cycle.cases[%d] %q: high_time must be in [0, period]", i, d.Description)
		}
	}
	if err := checkClocks("clock_speeds", c.ClockSpeeds); err != nil {
		return err
	}
	if err := checkClocks("scenarios", c.Scenarios); err != nil {
		return err
	}

	h := c.Extras.Harmonics
	if h.Enable {
		if h.SamplesPerCycle < 2 {
			return errors.New("extras.harmonics.samples_per_cycle must be >= 2")
		}
		if limit := int(clocksig.NewClock(uint(h.SamplesPerCycle), 0).SPC() / 2); h.Count < 1 || h.Count > limit {
			return errors.Errorf("extras.harmonics.count must be in [1, %d]", limit)
		}
	}
	return nil
}

// Tutorial returns the tutorial described by c.
//
func (c Config) Tutorial() report.Tutorial {
	t := report.Tutorial{
		Waveform: report.WaveformOptions{
			Cycles:          c.Waveform.Cycles,
			SamplesPerCycle: c.Waveform.SamplesPerCycle,
			Glyphs:          clocksig.UnicodeGlyphs,
		},
		EdgeCycles:      uint(c.Edges.Cycles),
		DutyPeriod:      float64(c.DutyCycle.Period),
		Applications:    c.Apps,
		Harmonics:       c.Extras.Harmonics.Enable,
		HarmonicSamples: uint(c.Extras.Harmonics.SamplesPerCycle),
		HarmonicCount:   c.Extras.Harmonics.Count,
		FlipFlops:       c.Extras.FlipFlops.Enable,
		FlipFlopData:    c.Extras.FlipFlops.Data,
	}
	if c.Waveform.ASCII {
		t.Waveform.Glyphs = clocksig.ASCIIGlyphs
	}
	for _, f := range c.Parameters.Frequencies {
		t.TestFrequencies = append(t.TestFrequencies, float64(f))
	}
	for _, d := range c.DutyCycle.Cases {
		t.DutyCases = append(t.DutyCases, report.DutyCase{Description: d.Description, HighTime: float64(d.HighTime)})
	}
	t.ClockSpeeds = reportClocks(c.ClockSpeeds)
	t.Scenarios = reportClocks(c.Scenarios)
	return t
}

func reportClocks(cs []ClockConfig) []report.Clock {
	out := make([]report.Clock, len(cs))
	for i, c := range cs {
		out[i] = report.Clock{Name: c.Name, Hz: float64(c.Frequency)}
	}
	return out
}
