// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/KolibroidAmy/prettycat"
	"github.com/KolibroidAmy/prettycat/cmd/cat"
	"github.com/KolibroidAmy/prettycat/cmd/image"
	"github.com/KolibroidAmy/prettycat/cmd/presets"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		cat.CatCmd,
		image.ImageCmd,
		presets.PresetsCmd,
	},
	DefaultCommand: "cat",
	Writer:         os.Stdout,
	ErrWriter:      os.Stderr,
	Name:           "prettycat",
	Description: `Prettycat copies text streams to stdout, coloring each visible
character from a flag gradient: a pride preset, a custom stop list or a
reference image. It can also render an image directly as colored terminal
cells. Input escape sequences are passed through, with any incoming colors
replaced by the gradient.`,
	Usage:     "prettycat --flag trans file.txt",
	Version:   prettycat.Version,
	Copyright: "Copyright (c) KolibroidAmy 2026. All rights reserved.",
	Authors: []any{
		"KolibroidAmy",
	},
	EnableShellCompletion: true,
}
