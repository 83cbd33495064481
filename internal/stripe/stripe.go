// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stripe converts a (row, column) output coordinate into the
// continuous gradient position fed to the sampler. The phase that shifts
// the gradient per line is an explicit function of the row rather than an
// ambient counter, so a mapper is a pure value and renders are repeatable.
package stripe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrientation is returned when an orientation string is unknown.
var ErrInvalidOrientation = errors.New("invalid orientation")

// Orientation is the axis along which the gradient varies.
type Orientation int

const (
	// Horizontal varies the gradient along columns.
	Horizontal Orientation = iota
	// Vertical varies the gradient along rows.
	Vertical
	// Diagonal varies the gradient along the row+column diagonal.
	Diagonal
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// ParseOrientation resolves an orientation name, case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	case "diagonal", "d", "":
		return Diagonal, nil
	default:
		return Diagonal, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}

// Mapper computes gradient positions for output coordinates.
// Speed is the number of gradient cycles advanced per cell along the
// orientation axis; PhaseDelta is the additional offset accumulated per
// line, producing the flowing-stripe look. The result is reduced modulo 1
// by the gradient sampler, so the mapper needs no wrapping logic of its own
// and unbounded row/col counters are safe.
type Mapper struct {
	Orientation Orientation
	Speed       float64
	PhaseDelta  float64
}

// DefaultSpeed matches the original stripes-per-cell frequency.
const DefaultSpeed = 0.05

// DefaultMapper returns the mapper used when no layout flags are given:
// diagonal stripes at the default speed. Diagonal orientation already
// offsets successive lines, so its default phase delta is zero.
func DefaultMapper() Mapper {
	return Mapper{
		Orientation: Diagonal,
		Speed:       DefaultSpeed,
		PhaseDelta:  0,
	}
}

// DefaultPhaseDelta returns the per-line phase advance used when the flag is
// not set explicitly: horizontal and vertical gradients shift by one speed
// step per line so successive lines are visibly offset.
func DefaultPhaseDelta(o Orientation, speed float64) float64 {
	if o == Diagonal {
		return 0
	}

	return speed
}

// PositionFor returns the continuous gradient position for the cell at the
// given row and column.
func (m Mapper) PositionFor(row, col int) float64 {
	phase := float64(row) * m.PhaseDelta

	switch m.Orientation {
	case Horizontal:
		return float64(col)*m.Speed + phase
	case Vertical:
		return float64(row)*m.Speed + phase
	case Diagonal:
		return float64(row+col)*m.Speed + phase
	default:
		return phase
	}
}
