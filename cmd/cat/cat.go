// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cat implements the default command: colorize text streams.
package cat

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/KolibroidAmy/prettycat/cmd/exitcodes"
	"github.com/KolibroidAmy/prettycat/internal/ctxlog"
	"github.com/KolibroidAmy/prettycat/internal/gradient"
	"github.com/KolibroidAmy/prettycat/internal/imgload"
	"github.com/KolibroidAmy/prettycat/internal/imgrender"
	"github.com/KolibroidAmy/prettycat/internal/pattern"
	"github.com/KolibroidAmy/prettycat/internal/render"
	"github.com/KolibroidAmy/prettycat/internal/stripe"
	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/KolibroidAmy/prettycat/internal/termsize"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	flagFlagName         = "flag"
	customFlagName       = "custom"
	flagFileFlagName     = "flag-file"
	imagePatternFlagName = "image-pattern"
	noopFlagName         = "noop"
	orientationFlagName  = "orientation"
	speedFlagName        = "speed"
	phaseDeltaFlagName   = "phase-delta"
	deadzoneFlagName     = "deadzone"
	mirrorFlagName       = "mirror"
	cyclicFlagName       = "cyclic"
	widthFlagName        = "width"
	tabSizeFlagName      = "tab-size"
	colorFlagName        = "color"

	// defaultDeadzone keeps flag stripes mostly solid with short blends at
	// the boundaries. Zero gives a pure linear gradient.
	defaultDeadzone = 0.6
)

// fsys is the filesystem inputs are read from; stubbed in tests.
var fsys afero.Fs = afero.NewOsFs()

// CatCmd colorizes the concatenation of its file arguments.
var CatCmd = NewCommand()

// NewCommand builds a fresh cat command. Tests use this to avoid sharing
// parsed flag state between runs.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:        "cat",
		Description: "Colorize text from files or stdin with a flag gradient.",
		ArgsUsage:   "[FILES...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagFlagName,
				Aliases: []string{"f"},
				Usage:   "Preset flag name (see 'prettycat presets')",
			},
			&cli.StringFlag{
				Name:    customFlagName,
				Aliases: []string{"c"},
				Usage:   "Comma-separated hex stops, each RRGGBB[:weight]",
			},
			&cli.StringFlag{
				Name:      flagFileFlagName,
				Usage:     "YAML catalog of extra presets, merged over the built-ins",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      imagePatternFlagName,
				Usage:     "Color cells by sampling this image, tiled over the output",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    noopFlagName,
				Aliases: []string{"n"},
				Usage:   "Copy the input without coloring",
			},
			&cli.StringFlag{
				Name:    orientationFlagName,
				Aliases: []string{"o"},
				Usage:   "Gradient direction: horizontal, vertical or diagonal",
				Value:   "diagonal",
			},
			&cli.FloatFlag{
				Name:  speedFlagName,
				Usage: "Gradient cycles advanced per cell",
				Value: stripe.DefaultSpeed,
			},
			&cli.FloatFlag{
				Name:  phaseDeltaFlagName,
				Usage: "Extra phase advance per line (default: speed for horizontal/vertical, 0 for diagonal)",
			},
			&cli.FloatFlag{
				Name:  deadzoneFlagName,
				Usage: "Fraction of each stripe held solid before blending (0 = pure gradient)",
				Value: defaultDeadzone,
			},
			&cli.BoolFlag{
				Name:  mirrorFlagName,
				Usage: "Mirror the pattern so it reads the same in both directions",
			},
			&cli.BoolFlag{
				Name:  cyclicFlagName,
				Usage: "Blend the last stop back into the first",
				Value: true,
			},
			&cli.IntFlag{
				Name:  widthFlagName,
				Usage: "Assume this terminal width instead of probing it",
			},
			&cli.IntFlag{
				Name:  tabSizeFlagName,
				Usage: "Tab stop width",
				Value: render.DefaultTabSize,
			},
			&cli.StringFlag{
				Name:  colorFlagName,
				Usage: "Color output: auto, always, never or 256",
				Value: "auto",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	profile, err := termcolor.DetectProfile(cmd.String(colorFlagName))
	if err != nil {
		return cli.Exit(err.Error(), exitcodes.InvalidPattern)
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		files = []string{"-"}
	}

	if cmd.Bool(noopFlagName) {
		return copyRawFiles(cmd, files)
	}

	colorizer, err := buildColorizer(cmd)
	if err != nil {
		return cli.Exit(err.Error(), exitCodeFor(err))
	}

	cfg := render.Config{
		Profile:        profile,
		WrapColumn:     wrapColumn(cmd),
		TabSize:        int(cmd.Int(tabSizeFlagName)),
		FlushOnNewline: true,
	}

	var errs *multierror.Error

	for _, name := range files {
		r := render.New(colorizer, cfg)

		if err := renderFile(ctx, r, cmd, name); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}

			ctxlog.Warn(ctx, "input failed", "file", name, "error", err)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return cli.Exit(err.Error(), exitcodes.InputIO)
	}

	return nil
}

func renderFile(ctx context.Context, r *render.Renderer, cmd *cli.Command, name string) error {
	if name == "-" {
		return r.Copy(ctx, cmd.Writer, cmd.Reader)
	}

	f, err := fsys.Open(name)
	if err != nil {
		return errors.Join(render.ErrRead, err)
	}

	defer f.Close() //nolint:errcheck // read-only handle

	return r.Copy(ctx, cmd.Writer, f)
}

func copyRawFiles(cmd *cli.Command, files []string) error {
	var errs *multierror.Error

	for _, name := range files {
		if name == "-" {
			if err := render.CopyRaw(cmd.Writer, cmd.Reader); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("stdin: %w", err))
			}

			continue
		}

		f, err := fsys.Open(name)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		err = render.CopyRaw(cmd.Writer, f)
		f.Close() //nolint:errcheck,gosec // read-only handle

		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return cli.Exit(err.Error(), exitcodes.InputIO)
	}

	return nil
}

func buildColorizer(cmd *cli.Command) (render.Colorizer, error) {
	if path := cmd.String(imagePatternFlagName); path != "" {
		frame, err := imgload.Load(fsys, path)
		if err != nil {
			return nil, err
		}

		return render.ImagePattern{Src: frame}, nil
	}

	pat, err := buildPattern(cmd)
	if err != nil {
		return nil, err
	}

	mapper, err := buildMapper(cmd)
	if err != nil {
		return nil, err
	}

	return render.Flag{
		Mapper:  mapper,
		Sampler: gradient.New(pat, cmd.Float(deadzoneFlagName)),
	}, nil
}

func buildPattern(cmd *cli.Command) (*pattern.Pattern, error) {
	catalog := pattern.NewCatalog()

	if path := cmd.String(flagFileFlagName); path != "" {
		extra, err := pattern.LoadFlagFile(fsys, path)
		if err != nil {
			return nil, err
		}

		catalog = pattern.NewCatalog(extra...)
	}

	var (
		pat *pattern.Pattern
		err error
	)

	switch {
	// IsSet so that an explicitly empty --custom is rejected by the parser
	// instead of silently falling back to the default preset.
	case cmd.IsSet(customFlagName):
		pat, err = pattern.ParseCustom(cmd.String(customFlagName))
	case cmd.String(flagFlagName) != "":
		preset, ok := catalog.ByName(cmd.String(flagFlagName))
		if !ok {
			return nil, fmt.Errorf("%w: unknown flag %q", pattern.ErrInvalidPattern, cmd.String(flagFlagName))
		}

		pat = preset.Pattern()
	default:
		pat = pattern.Default().Pattern()
	}

	if err != nil {
		return nil, err
	}

	if cmd.Bool(mirrorFlagName) {
		pat = pat.Mirror()
	}

	if !cmd.Bool(cyclicFlagName) {
		pat = pat.WithCyclic(false)
	}

	return pat, nil
}

func buildMapper(cmd *cli.Command) (stripe.Mapper, error) {
	orientation, err := stripe.ParseOrientation(cmd.String(orientationFlagName))
	if err != nil {
		return stripe.Mapper{}, err
	}

	speed := cmd.Float(speedFlagName)

	phaseDelta := stripe.DefaultPhaseDelta(orientation, speed)
	if cmd.IsSet(phaseDeltaFlagName) {
		phaseDelta = cmd.Float(phaseDeltaFlagName)
	}

	return stripe.Mapper{
		Orientation: orientation,
		Speed:       speed,
		PhaseDelta:  phaseDelta,
	}, nil
}

// wrapColumn picks the column at which the output wraps. An explicit width
// wins; otherwise the terminal is probed, and piped output never wraps.
func wrapColumn(cmd *cli.Command) int {
	if w := int(cmd.Int(widthFlagName)); w > 0 {
		return w
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0
	}

	columns, _ := termsize.Size()

	return columns
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, imgrender.ErrEmptyImage):
		return exitcodes.EmptyImage
	case errors.Is(err, imgload.ErrDecodeImage):
		return exitcodes.ImageDecode
	case errors.Is(err, pattern.ErrReadFlagFile):
		return exitcodes.InputIO
	default:
		return exitcodes.InvalidPattern
	}
}
