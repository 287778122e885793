// SPDX-License-Identifier: MIT

// Command phasorview animates phasor diagrams for slit diffraction in the
// terminal and plots the resulting amplitude and intensity curves.
//
//	phasorview -model slits  -n 5
//	phasorview -model single -a 2.5
//	phasorview -model multi  -n 4 -d 2 -a 1
//	phasorview -model multi  -n 4 -d 2 -a 1 -print > pattern.tsv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/fraunhofer/diffraction"
	"github.com/katalvlaran/fraunhofer/sampling"
	"github.com/katalvlaran/fraunhofer/view"
)

// params are the parsed command-line settings.
type params struct {
	model       string
	n, d, a     float64
	animate     bool
	interactive bool
	table       bool
	delay       time.Duration
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	p, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("bad arguments", "error", err)
		os.Exit(2)
	}

	if p.table {
		res, err := compute(p)
		if err != nil {
			exitInvalid(err)
		}
		if err := printTable(os.Stdout, res); err != nil {
			slog.Error("write failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := show(p); err != nil {
		exitInvalid(err)
	}
}

// exitInvalid reports a model or terminal failure and exits.
func exitInvalid(err error) {
	if errors.Is(err, diffraction.ErrInvalidParameter) {
		slog.Error("invalid input", "error", err)
		os.Exit(2)
	}
	slog.Error("phasorview failed", "error", err)
	os.Exit(1)
}

// parseFlags reads the command line into params.
func parseFlags(args []string, output io.Writer) (params, error) {
	def := view.DefaultConfig()

	var p params
	fs := flag.NewFlagSet("phasorview", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&p.model, "model", "slits", "slits | single | multi")
	fs.Float64Var(&p.n, "n", 5, "number of slits (slits, multi)")
	fs.Float64Var(&p.d, "d", 2, "slit spacing in wavelengths (multi)")
	fs.Float64Var(&p.a, "a", 1, "slit width in wavelengths (single, multi)")
	fs.BoolVar(&p.animate, "animate", def.Animate, "animate the phasor chain for every sample")
	fs.BoolVar(&p.interactive, "interactive", true, "open the phase slider after the plots (slits only)")
	fs.BoolVar(&p.table, "print", false, "print the curves as tab-separated values instead of drawing")
	fs.DurationVar(&p.delay, "delay", def.FrameDelay, "pause between animation frames")

	if err := fs.Parse(args); err != nil {
		return params{}, err
	}
	switch p.model {
	case "slits", "single", "multi":
	default:
		return params{}, fmt.Errorf("unknown model %q", p.model)
	}
	if p.delay < 0 {
		return params{}, fmt.Errorf("negative delay %v", p.delay)
	}

	return p, nil
}

// compute runs the selected model.
func compute(p params, opts ...diffraction.Option) (*diffraction.Result, error) {
	var (
		res *diffraction.Result
		err error
	)
	switch p.model {
	case "single":
		res, err = diffraction.SingleSlit(p.a, opts...)
	case "multi":
		res, err = diffraction.MultiSlit(p.n, p.d, p.a, opts...)
	default:
		res, err = diffraction.Slits(p.n, opts...)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("model computed",
		"model", p.model,
		"title", res.Title,
		"sources", res.Sources,
		"samples", humanize.Comma(int64(len(res.X))),
		"reference", res.Reference != nil,
	)

	return res, nil
}

// show animates the model, plots it, and for slits opens the slider.
func show(p params) error {
	cfg := view.DefaultConfig()
	cfg.Animate = p.animate
	cfg.FrameDelay = p.delay

	term, err := view.NewTerminal()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer term.Close()

	anim := view.NewAnimator(cfg, term, term.Keys())
	res, err := compute(p, diffraction.WithOrigin(cfg.Origin), diffraction.WithObserver(anim.Observe))
	if err != nil {
		return err
	}
	slog.Debug("animation finished", "frames", anim.Frames())

	view.Hold(term, term.Keys(), func(c *view.Canvas) { view.Plot(c, res) })

	if p.model == "slits" && p.interactive {
		view.Interact(term, term.Keys(), view.NewSlider(cfg, res.Sources, res.ArrowLen))
	}

	return nil
}

// printTable writes one row per sample (x in degrees, amplitude,
// intensity), then the reference curve as a second block if present.
func printTable(w io.Writer, res *diffraction.Result) error {
	if _, err := fmt.Fprintf(w, "# %s\n# %s(deg)\tamplitude\tintensity\n", res.Title, res.Variable); err != nil {
		return err
	}
	for i, x := range sampling.Degrees(res.X) {
		if _, err := fmt.Fprintf(w, "%.6f\t%.9f\t%.9f\n", x, res.Amplitude[i], res.Intensity[i]); err != nil {
			return err
		}
	}
	if res.Reference == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\n# reference\n# %s(deg)\tintensity\n", res.Variable); err != nil {
		return err
	}
	for i, x := range sampling.Degrees(res.Reference.X) {
		if _, err := fmt.Fprintf(w, "%.6f\t%.9f\n", x, res.Reference.Y[i]); err != nil {
			return err
		}
	}

	return nil
}
