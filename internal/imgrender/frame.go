// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package imgrender

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"golang.org/x/image/draw"
)

var (
	// ErrEmptyImage is returned for a decoded image with a zero dimension.
	ErrEmptyImage = errors.New("empty image")
	// ErrInvalidDimension is returned for an unparseable width or height
	// flag value.
	ErrInvalidDimension = errors.New("invalid image dimension")
)

// DefaultCellAspectRatio is the assumed width/height ratio of one terminal
// cell, used when deriving the output height from the aspect ratio.
const DefaultCellAspectRatio = 0.7

// Frame is an immutable pixel grid.
type Frame struct {
	img    *image.RGBA
	width  int
	height int
}

// NewFrame adapts a decoded image. It fails with ErrEmptyImage when either
// dimension is zero, before anything is rendered.
func NewFrame(src image.Image) (*Frame, error) {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, b.Dx(), b.Dy())
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(rgba, image.Point{}, src, b, draw.Src, nil)

	return &Frame{img: rgba, width: b.Dx(), height: b.Dy()}, nil
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// At returns the pixel color at (x, y).
func (f *Frame) At(x, y int) termcolor.RGB {
	c := f.img.RGBAAt(x, y)

	return termcolor.RGB{R: c.R, G: c.G, B: c.B}
}

// DimensionMode says how a target width or height is chosen.
type DimensionMode int

const (
	// DimFit scales the width to the terminal columns, or the height to
	// preserve the aspect ratio.
	DimFit DimensionMode = iota
	// DimOriginal keeps the source dimension.
	DimOriginal
	// DimFixed uses an explicit pixel count.
	DimFixed
)

// Dimension is a parsed --image-width or --image-height value.
type Dimension struct {
	Mode  DimensionMode
	Value int
}

// ParseWidth parses an --image-width value: "fit", "original" or a number.
func ParseWidth(s string) (Dimension, error) {
	return parseDimension(s, "fit")
}

// ParseHeight parses an --image-height value: "ratio", "original" or a
// number. "ratio" derives the height from the resized width.
func ParseHeight(s string) (Dimension, error) {
	return parseDimension(s, "ratio")
}

func parseDimension(s, fitWord string) (Dimension, error) {
	switch {
	case s == "" || strings.EqualFold(s, fitWord):
		return Dimension{Mode: DimFit}, nil
	case strings.EqualFold(s, "original"):
		return Dimension{Mode: DimOriginal}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}

	return Dimension{Mode: DimFixed, Value: n}, nil
}

// ResizeOptions control how a frame is fitted to the terminal.
type ResizeOptions struct {
	// Columns is the terminal width; it caps the output width in fit mode.
	Columns int
	// Width and Height select the output dimensions.
	Width  Dimension
	Height Dimension
	// CellAspectRatio compensates for cells being taller than wide when the
	// height is derived from the aspect ratio; zero means the default.
	CellAspectRatio float64
}

// Resize derives a new frame fitted to the given constraints. The source
// frame is left untouched.
func (f *Frame) Resize(opts ResizeOptions) (*Frame, error) {
	aspect := opts.CellAspectRatio
	if aspect == 0 {
		aspect = DefaultCellAspectRatio
	}

	outW := f.width

	switch opts.Width.Mode {
	case DimFit:
		outW = opts.Columns
	case DimOriginal:
		outW = f.width
	case DimFixed:
		outW = opts.Width.Value
	}

	if outW < 1 {
		outW = 1
	}

	outH := f.height

	switch opts.Height.Mode {
	case DimFit:
		// Preserve the aspect ratio through the width scale factor,
		// compensating for the cell shape.
		scale := float64(outW) / float64(f.width)
		outH = int(math.Round(float64(f.height) * scale * aspect))
	case DimOriginal:
		outH = f.height
	case DimFixed:
		outH = opts.Height.Value
	}

	if outH < 1 {
		outH = 1
	}

	if outW == f.width && outH == f.height {
		return f, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), f.img, f.img.Bounds(), draw.Src, nil)

	return &Frame{img: dst, width: outW, height: outH}, nil
}
