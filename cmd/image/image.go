// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package image implements the command that renders an image as colored
// terminal cells.
package image

import (
	"context"
	"errors"
	"fmt"

	"github.com/KolibroidAmy/prettycat/cmd/exitcodes"
	"github.com/KolibroidAmy/prettycat/internal/imgload"
	"github.com/KolibroidAmy/prettycat/internal/imgrender"
	"github.com/KolibroidAmy/prettycat/internal/pager"
	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/KolibroidAmy/prettycat/internal/termsize"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	fileArg = "file"

	imageWidthFlagName  = "image-width"
	imageHeightFlagName = "image-height"
	cellAspectFlagName  = "cell-aspect-ratio"
	heightFlagName      = "height"
	widthFlagName       = "width"
	interactiveFlagName = "interactive"
	colorFlagName       = "color"
)

// fsys is the filesystem images are read from; stubbed in tests.
var fsys afero.Fs = afero.NewOsFs()

// ImageCmd renders an image file as colored cells.
var ImageCmd = NewCommand()

// NewCommand builds a fresh image command. Tests use this to avoid sharing
// parsed flag state between runs.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:        "image",
		Description: "Render an image as colored terminal cells.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      fileArg,
				UsageText: "IMAGEFILE",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  imageWidthFlagName,
				Usage: "Output width: fit, original or a cell count",
				Value: "fit",
			},
			&cli.StringFlag{
				Name:  imageHeightFlagName,
				Usage: "Output height: ratio, original or a cell count",
				Value: "ratio",
			},
			&cli.FloatFlag{
				Name:  cellAspectFlagName,
				Usage: "Assumed width/height ratio of one terminal cell",
				Value: imgrender.DefaultCellAspectRatio,
			},
			&cli.IntFlag{
				Name:  heightFlagName,
				Usage: "Assume this many visible terminal rows instead of probing",
			},
			&cli.IntFlag{
				Name:  widthFlagName,
				Usage: "Assume this terminal width instead of probing it",
			},
			&cli.BoolFlag{
				Name:    interactiveFlagName,
				Aliases: []string{"i"},
				Usage:   "Page tall images in a full-screen viewer",
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
	path := cmd.StringArg(fileArg)
	if path == "" {
		return cli.Exit("please provide an image file to render", exitcodes.ImageDecode)
	}

	profile, err := termcolor.DetectProfile(cmd.String(colorFlagName))
	if err != nil {
		return cli.Exit(err.Error(), exitcodes.InvalidPattern)
	}

	frame, err := imgload.Load(fsys, path)
	if err != nil {
		code := exitcodes.ImageDecode
		if errors.Is(err, imgrender.ErrEmptyImage) {
			code = exitcodes.EmptyImage
		}

		return cli.Exit(err.Error(), code)
	}

	opts, rows, err := resolveLayout(cmd)
	if err != nil {
		return cli.Exit(err.Error(), exitcodes.InvalidPattern)
	}

	resized, err := frame.Resize(opts)
	if err != nil {
		return cli.Exit(err.Error(), exitcodes.EmptyImage)
	}

	if cmd.Bool(interactiveFlagName) && resized.Height() > rows {
		content := imgrender.RenderRows(resized, profile, 0, resized.Height())
		return pager.Run(ctx, path, content)
	}

	sb := imgrender.NewScrollBuffer(resized, profile, rows)

	for sb.More() {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		screen, _ := sb.NextScreen()
		if _, err := fmt.Fprint(cmd.Writer, screen); err != nil {
			return cli.Exit(err.Error(), exitcodes.InputIO)
		}
	}

	return nil
}

// resolveLayout turns the flags into resize options and the visible row
// count used for paging.
func resolveLayout(cmd *cli.Command) (imgrender.ResizeOptions, int, error) {
	width, err := imgrender.ParseWidth(cmd.String(imageWidthFlagName))
	if err != nil {
		return imgrender.ResizeOptions{}, 0, err
	}

	height, err := imgrender.ParseHeight(cmd.String(imageHeightFlagName))
	if err != nil {
		return imgrender.ResizeOptions{}, 0, err
	}

	columns, rows := termsize.Size()
	if w := int(cmd.Int(widthFlagName)); w > 0 {
		columns = w
	}

	if h := int(cmd.Int(heightFlagName)); h > 0 {
		rows = h
	} else if rows > 1 {
		// Leave the prompt line visible after the image.
		rows--
	}

	return imgrender.ResizeOptions{
		Columns:         columns,
		Width:           width,
		Height:          height,
		CellAspectRatio: cmd.Float(cellAspectFlagName),
	}, rows, nil
}
