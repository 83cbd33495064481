// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KolibroidAmy/prettycat/internal/termcolor"
)

// ErrInvalidPattern is returned when a pattern is empty or carries a
// non-positive stop weight.
var ErrInvalidPattern = errors.New("invalid pattern")

// Stop is one color entry within a pattern, with its relative width weight.
type Stop struct {
	Color  termcolor.RGB
	Weight float64
}

// Pattern is an ordered, non-empty sequence of color stops. Cyclic patterns
// blend their last stop back into the first.
type Pattern struct {
	stops      []Stop
	boundaries []float64
	cyclic     bool
}

// New builds a pattern from the given stops, normalizing weights so they sum
// to one and computing the cumulative boundary offsets [0, w1, w1+w2, ..., 1].
func New(stops []Stop, cyclic bool) (*Pattern, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: no stops", ErrInvalidPattern)
	}

	var total float64

	for i, s := range stops {
		if s.Weight <= 0 {
			return nil, fmt.Errorf("%w: stop %d has non-positive weight %v", ErrInvalidPattern, i, s.Weight)
		}

		total += s.Weight
	}

	normalized := make([]Stop, len(stops))
	boundaries := make([]float64, len(stops)+1)

	var cum float64

	for i, s := range stops {
		normalized[i] = Stop{Color: s.Color, Weight: s.Weight / total}
		boundaries[i] = cum
		cum += normalized[i].Weight
	}

	// Pin the final boundary so accumulated rounding cannot leave a gap at 1.
	boundaries[len(stops)] = 1.0

	return &Pattern{
		stops:      normalized,
		boundaries: boundaries,
		cyclic:     cyclic,
	}, nil
}

// FromColors builds an equal-weight cyclic pattern from a stripe sequence.
func FromColors(colors ...termcolor.RGB) (*Pattern, error) {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		stops[i] = Stop{Color: c, Weight: 1}
	}

	return New(stops, true)
}

// Stops returns the normalized stops.
func (p *Pattern) Stops() []Stop {
	return p.stops
}

// Boundaries returns the cumulative boundary offsets. The slice has one more
// entry than Stops, beginning at 0 and ending at 1.
func (p *Pattern) Boundaries() []float64 {
	return p.boundaries
}

// Cyclic reports whether the final stop blends back into the first.
func (p *Pattern) Cyclic() bool {
	return p.cyclic
}

// Mirror returns a new pattern that plays forward then backward, producing a
// seamless palindromic loop. The reversed interior stops are appended and
// each segment takes the average width of the two stops it joins, which
// keeps the boundary layout symmetric so that sampling at t and 1-t yields
// the same color. The result is always cyclic; a mirrored pattern that did
// not wrap would break at the seam.
func (p *Pattern) Mirror() *Pattern {
	n := len(p.stops)
	if n == 1 {
		return p.WithCyclic(true)
	}

	doubled := make([]Stop, 0, 2*n-2)
	doubled = append(doubled, p.stops...)

	for i := n - 2; i >= 1; i-- {
		doubled = append(doubled, p.stops[i])
	}

	m := len(doubled)
	widths := make([]Stop, m)

	for i := range doubled {
		next := doubled[(i+1)%m]
		widths[i] = Stop{
			Color:  doubled[i].Color,
			Weight: (doubled[i].Weight + next.Weight) / 2,
		}
	}

	mirrored, err := New(widths, true)
	if err != nil {
		// Unreachable: the source pattern was already validated.
		panic(err)
	}

	return mirrored
}

// WithCyclic returns a copy of the pattern with the cyclic flag set as given.
func (p *Pattern) WithCyclic(cyclic bool) *Pattern {
	return &Pattern{
		stops:      p.stops,
		boundaries: p.boundaries,
		cyclic:     cyclic,
	}
}

// ParseCustom parses a comma-separated custom stop list. Each entry is a hex
// color, optionally weighted: "RRGGBB[:weight]". The resulting pattern is
// cyclic, matching the preset flags.
func ParseCustom(s string) (*Pattern, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty custom pattern", ErrInvalidPattern)
	}

	parts := strings.Split(s, ",")
	stops := make([]Stop, 0, len(parts))

	for _, part := range parts {
		stop, err := parseStop(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}

		stops = append(stops, stop)
	}

	return New(stops, true)
}

// parseStop parses a single "RRGGBB[:weight]" stop descriptor, as used by
// custom patterns and flag-file stripes.
func parseStop(s string) (Stop, error) {
	hex, weightStr, weighted := strings.Cut(s, ":")

	weight := 1.0

	if weighted {
		w, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return Stop{}, fmt.Errorf("%w: bad weight %q in %q", ErrInvalidPattern, weightStr, s)
		}

		weight = w
	}

	color, err := termcolor.ParseHex(hex)
	if err != nil {
		return Stop{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return Stop{Color: color, Weight: weight}, nil
}
