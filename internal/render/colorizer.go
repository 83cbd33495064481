// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/KolibroidAmy/prettycat/internal/gradient"
	"github.com/KolibroidAmy/prettycat/internal/stripe"
	"github.com/KolibroidAmy/prettycat/internal/termcolor"
)

// Colorizer computes the color for an output cell. Implementations must be
// pure: the same coordinates always yield the same color, which is what
// makes renders repeatable and testable.
type Colorizer interface {
	ColorAt(row, col int) termcolor.RGB
}

// Flag colors cells from a stripe pattern.
type Flag struct {
	Mapper  stripe.Mapper
	Sampler *gradient.Sampler
}

// ColorAt implements Colorizer.
func (f Flag) ColorAt(row, col int) termcolor.RGB {
	return f.Sampler.Sample(f.Mapper.PositionFor(row, col))
}

// PixelSource is a pixel grid that can be queried by cell coordinate.
// imgrender.Frame satisfies it.
type PixelSource interface {
	Width() int
	Height() int
	At(x, y int) termcolor.RGB
}

// ImagePattern colors cells from a pixel grid, tiling it over the output by
// wrapping coordinates.
type ImagePattern struct {
	Src PixelSource
}

// ColorAt implements Colorizer.
func (p ImagePattern) ColorAt(row, col int) termcolor.RGB {
	w, h := p.Src.Width(), p.Src.Height()

	return p.Src.At(mod(col, w), mod(row, h))
}

func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}

	return v
}
