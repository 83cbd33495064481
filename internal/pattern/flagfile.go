// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// ErrReadFlagFile is returned when a flag file cannot be read or parsed.
var ErrReadFlagFile = errors.New("failed to read flag file")

// flagFile is the YAML document schema for user-defined preset catalogs.
//
//	flags:
//	  - name: aurora
//	    aliases: [polar]
//	    stripes: ["00FF00", "0000FF:2"]
type flagFile struct {
	Flags []flagEntry `yaml:"flags"`
}

type flagEntry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Stripes []string `yaml:"stripes"`
}

// LoadFlagFile reads a YAML preset catalog. Stripe entries use the same
// "RRGGBB[:weight]" descriptor syntax as --custom. Entries with no name or
// no stripes are rejected.
func LoadFlagFile(fs afero.Fs, path string) ([]Preset, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Join(ErrReadFlagFile, err)
	}

	var doc flagFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrReadFlagFile, err)
	}

	out := make([]Preset, 0, len(doc.Flags))

	for _, entry := range doc.Flags {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: entry with no name", ErrInvalidPattern)
		}

		if len(entry.Stripes) == 0 {
			return nil, fmt.Errorf("%w: flag %q has no stripes", ErrInvalidPattern, entry.Name)
		}

		stripes := make([]termcolor.RGB, 0, len(entry.Stripes))
		weights := make([]float64, 0, len(entry.Stripes))

		for _, s := range entry.Stripes {
			stop, err := parseStop(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("%w: flag %q: %w", ErrInvalidPattern, entry.Name, err)
			}

			stripes = append(stripes, stop.Color)
			weights = append(weights, stop.Weight)
		}

		out = append(out, Preset{
			Name:    entry.Name,
			Aliases: entry.Aliases,
			Stripes: stripes,
			Weights: weights,
		})
	}

	return out, nil
}
