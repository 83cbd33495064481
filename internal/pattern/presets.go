// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package pattern

import (
	"strings"

	"github.com/KolibroidAmy/prettycat/internal/termcolor"
)

// Preset is a named flag, either built in or loaded from a flag file.
type Preset struct {
	Name    string
	Aliases []string
	Stripes []termcolor.RGB
	// Weights are the relative stripe widths. A nil or short slice means
	// equal widths for the remaining stripes.
	Weights []float64
}

// Pattern returns the cyclic pattern for the preset's stripes, honoring any
// per-stripe weights.
func (p Preset) Pattern() *Pattern {
	stops := make([]Stop, len(p.Stripes))

	for i, c := range p.Stripes {
		weight := 1.0
		if i < len(p.Weights) {
			weight = p.Weights[i]
		}

		stops[i] = Stop{Color: c, Weight: weight}
	}

	pat, err := New(stops, true)
	if err != nil {
		// Unreachable: every preset has at least one stripe.
		panic(err)
	}

	return pat
}

// presets is the process-wide flag catalog. It is read-only after init, so
// it may be queried from any context without locking. Only pride flags are
// included; national flags are usually better served by image mode.
var presets = []Preset{
	{
		Name:    "pride",
		Aliases: []string{"rainbow"},
		Stripes: hexStripes(0xE40303, 0xFF8C00, 0xFFED00, 0x008026, 0x24408E, 0x732982),
	},
	{
		Name:    "progress",
		Stripes: hexStripes(0xE40303, 0xFF8C00, 0xFFED00, 0x008026, 0x24408E, 0x732982, 0x222222, 0x7C3F00, 0x5BCEFA, 0xF5A9B8, 0xFFFFFF),
	},
	{
		Name:    "lesbian",
		Stripes: hexStripes(0xD52D00, 0xEF7627, 0xFF9A56, 0xFFFFFF, 0xD162A4, 0xB55690, 0xA30262),
	},
	{
		Name:    "gay",
		Stripes: hexStripes(0x078D70, 0x26CEAA, 0x98E8C1, 0xFFFFFF, 0x7BADE2, 0x5049CC, 0x3D1A78),
	},
	{
		Name:    "bi",
		Aliases: []string{"bisexual"},
		Stripes: hexStripes(0xD60270, 0xD60270, 0x9B4F96, 0x0038A8, 0x0038A8),
	},
	{
		Name:    "trans",
		Aliases: []string{"transgender"},
		Stripes: hexStripes(0x5BCEFA, 0xF5A9B8, 0xFFFFFF, 0xF5A9B8, 0x5BCEFA),
	},
}

func hexStripes(hexes ...uint32) []termcolor.RGB {
	out := make([]termcolor.RGB, len(hexes))
	for i, h := range hexes {
		out[i] = termcolor.FromHexInt(h)
	}

	return out
}

// All returns the built-in presets in declaration order.
func All() []Preset {
	return presets
}

// ByName finds a preset by name or alias, case-insensitively.
func ByName(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}

		for _, alias := range p.Aliases {
			if strings.EqualFold(alias, name) {
				return p, true
			}
		}
	}

	return Preset{}, false
}

// Default returns the preset used when no colorizer is selected.
func Default() Preset {
	p, ok := ByName("lesbian")
	if !ok {
		panic("built-in default preset missing")
	}

	return p
}

// Catalog is an ordered preset collection: built-ins first, then any
// user-supplied entries, which shadow built-ins on name clashes.
type Catalog []Preset

// NewCatalog returns the built-in presets extended with extra entries.
func NewCatalog(extra ...Preset) Catalog {
	out := make(Catalog, 0, len(presets)+len(extra))
	out = append(out, presets...)
	out = append(out, extra...)

	return out
}

// ByName finds a preset by name or alias, case-insensitively. Later entries
// win, so user presets can override built-ins.
func (c Catalog) ByName(name string) (Preset, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if strings.EqualFold(c[i].Name, name) {
			return c[i], true
		}

		for _, alias := range c[i].Aliases {
			if strings.EqualFold(alias, name) {
				return c[i], true
			}
		}
	}

	return Preset{}, false
}
