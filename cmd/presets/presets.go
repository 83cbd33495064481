// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package presets implements the command that lists the flag catalog.
package presets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KolibroidAmy/prettycat/cmd/exitcodes"
	"github.com/KolibroidAmy/prettycat/internal/pattern"
	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	flagFileFlagName = "flag-file"
	colorFlagName    = "color"

	swatch = "██"
)

// nameColumnWidth is the column the swatches start in; names and aliases
// are padded to it before any styling so escape bytes never shift it.
const nameColumnWidth = 28

// ErrWriteOutput is returned when the listing cannot be written.
var ErrWriteOutput = errors.New("failed to write preset listing")

// fsys is the filesystem flag files are read from; stubbed in tests.
var fsys afero.Fs = afero.NewOsFs()

// PresetsCmd lists the built-in and user-defined flag presets.
var PresetsCmd = NewCommand()

// NewCommand builds a fresh presets command. Tests use this to avoid
// sharing parsed flag state between runs.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:        "presets",
		Description: "List the available flag presets with their stripe colors.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      flagFileFlagName,
				Usage:     "YAML catalog of extra presets, merged over the built-ins",
				TakesFile: true,
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

func actionFunc(_ context.Context, cmd *cli.Command) error {
	profile, err := termcolor.DetectProfile(cmd.String(colorFlagName))
	if err != nil {
		return cli.Exit(err.Error(), exitcodes.InvalidPattern)
	}

	catalog := pattern.NewCatalog()

	if path := cmd.String(flagFileFlagName); path != "" {
		extra, lerr := pattern.LoadFlagFile(fsys, path)
		if lerr != nil {
			return cli.Exit(lerr.Error(), exitcodes.InputIO)
		}

		catalog = pattern.NewCatalog(extra...)
	}

	var b strings.Builder

	for _, p := range catalog {
		name := p.Name
		if len(p.Aliases) > 0 {
			name += " (" + strings.Join(p.Aliases, ", ") + ")"
		}

		padded := fmt.Sprintf("%-*s", nameColumnWidth, name)

		if profile == termcolor.ProfileNone {
			b.WriteString(padded + " ")
		} else {
			b.WriteString(termcolor.Bold + padded + termcolor.Reset + " ")
		}

		for _, c := range p.Stripes {
			b.WriteString(profile.Foreground(c))
			b.WriteString(swatch)
		}

		if profile != termcolor.ProfileNone {
			b.WriteString(termcolor.Reset)
		}

		b.WriteString("\n")
	}

	if _, err := fmt.Fprint(cmd.Writer, b.String()); err != nil {
		return cli.Exit(errors.Join(ErrWriteOutput, err).Error(), exitcodes.InputIO)
	}

	return nil
}
