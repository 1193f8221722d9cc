// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command clocksig prints the clock signals tutorial.
//
// Usage:
//
//	clocksig [flags] [frequency...]
//
// Without arguments the whole tutorial is printed. Each frequency argument,
// such as 16MHz or 44100, prints the parameters of a clock at that frequency
// instead.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/db47h/clocksig"
	"github.com/db47h/clocksig/internal/config"
	"github.com/db47h/clocksig/internal/term"
	"github.com/db47h/clocksig/internal/waveplot"
	"github.com/db47h/clocksig/report"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("clocksig: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatalf("%+v", err)
	}
}

// terminalWidth returns the width of w if it is a terminal, 0 otherwise.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, ok := term.Width(f.Fd()); ok {
			return cols
		}
	}
	return 0
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("clocksig", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath    = fs.String("config", "", "load tutorial tables from YAML `file`")
		ascii      = fs.Bool("ascii", false, "draw waveforms with ASCII characters")
		extras     = fs.Bool("extras", false, "print the harmonics and flip-flop sections")
		width      = fs.Int("width", -1, "wrap waveforms at `n` columns, 0 disables wrapping (default: terminal width)")
		plotPath   = fs.String("plot", "", "also plot the waveform to `file` (png, svg, pdf...)")
		cpuProfile = fs.String("cpuprofile", "", "write a CPU profile to `dir`")
		dump       = fs.Bool("dump-config", false, "print the effective configuration as YAML and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *ascii {
		cfg.Waveform.ASCII = true
	}
	if *extras {
		cfg.Extras.Harmonics.Enable = true
		cfg.Extras.FlipFlops.Enable = true
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if *dump {
		b, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = stdout.Write(b)
		return err
	}

	if *plotPath != "" {
		if err := waveplot.Save(*plotPath, cfg.Waveform.Cycles, cfg.Waveform.SamplesPerCycle); err != nil {
			return err
		}
	}

	if fs.NArg() > 0 {
		return printParameters(stdout, fs.Args())
	}

	t := cfg.Tutorial()
	t.Waveform.Width = *width
	if *width < 0 {
		t.Waveform.Width = terminalWidth(stdout)
	}
	return t.Run(stdout)
}

func printParameters(w io.Writer, args []string) error {
	for _, a := range args {
		f, err := clocksig.ParseFrequency(a)
		if err != nil {
			return err
		}
		if err = report.DisplayClockParameters(w, f); err != nil {
			return errors.Wrapf(err, "clock parameters for %s", a)
		}
	}
	return nil
}
