// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gradient samples an interpolated color from a pattern at a
// continuous position in [0, 1). Positions are reduced modulo 1 so
// indefinite streams can never run off the end of a pattern.
package gradient

import (
	"math"
	"sort"

	"github.com/KolibroidAmy/prettycat/internal/pattern"
	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/lucasb-eyer/go-colorful"
)

// Sampler interpolates colors over a validated, normalized pattern.
// Deadzone is the fraction of each segment held at the segment's first color
// before blending toward the next begins; zero yields a pure linear
// gradient. Sampling is deterministic: identical inputs always produce the
// identical color.
type Sampler struct {
	pat      *pattern.Pattern
	deadzone float64
}

// New creates a sampler for the given pattern. The deadzone is clamped to
// [0, 1).
func New(pat *pattern.Pattern, deadzone float64) *Sampler {
	if deadzone < 0 {
		deadzone = 0
	}

	if deadzone >= 1 {
		deadzone = math.Nextafter(1, 0)
	}

	return &Sampler{pat: pat, deadzone: deadzone}
}

// Sample returns the color at the given position. The position is taken
// modulo 1.0 regardless of the pattern's cyclic flag; cyclic only affects
// whether the final segment blends back into the first stop.
func (s *Sampler) Sample(position float64) termcolor.RGB {
	position = wrap(position)

	bounds := s.pat.Boundaries()
	stops := s.pat.Stops()

	// Index of the segment [bounds[i], bounds[i+1]] containing position.
	i := sort.SearchFloat64s(bounds, position)
	if i > 0 && (i >= len(bounds) || bounds[i] > position) {
		i--
	}

	if i >= len(stops) {
		i = len(stops) - 1
	}

	width := bounds[i+1] - bounds[i]
	if width <= 0 {
		// Zero-width segment after normalization rounding.
		return stops[i].Color
	}

	from := stops[i].Color

	var to termcolor.RGB

	switch {
	case i+1 < len(stops):
		to = stops[i+1].Color
	case s.pat.Cyclic():
		to = stops[0].Color
	default:
		// Non-cyclic patterns hold their last color through the final
		// segment.
		return from
	}

	t := (position - bounds[i]) / width
	t = s.applyDeadzone(t)

	return blend(from, to, t)
}

func (s *Sampler) applyDeadzone(t float64) float64 {
	if s.deadzone == 0 {
		return t
	}

	t = (t - s.deadzone) / (1 - s.deadzone)

	return math.Min(math.Max(t, 0), 1)
}

// wrap reduces a position modulo 1.0 into [0, 1).
func wrap(position float64) float64 {
	position = math.Mod(position, 1)
	if position < 0 {
		position++
	}

	return position
}

func blend(from, to termcolor.RGB, t float64) termcolor.RGB {
	a := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	b := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}

	m := a.BlendRgb(b, t)

	return termcolor.RGB{
		R: uint8(math.Round(m.R * 255)),
		G: uint8(math.Round(m.G * 255)),
		B: uint8(math.Round(m.B * 255)),
	}
}
