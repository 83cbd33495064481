// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package termcolor

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
)

// Profile selects how colors are written to the output stream.
type Profile int

const (
	// ProfileNone disables coloring entirely.
	ProfileNone Profile = iota
	// ProfileANSI256 degrades colors to the xterm 256-color palette.
	ProfileANSI256
	// ProfileTrueColor emits 24-bit SGR sequences.
	ProfileTrueColor
)

// String implements fmt.Stringer.
func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileANSI256:
		return "256"
	case ProfileTrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// Foreground returns the foreground sequence for c under this profile.
// It returns the empty string for ProfileNone.
func (p Profile) Foreground(c RGB) string {
	switch p {
	case ProfileANSI256:
		return c.Ansi256Foreground()
	case ProfileTrueColor:
		return c.Foreground()
	default:
		return ""
	}
}

// Background returns the background sequence for c under this profile.
func (p Profile) Background(c RGB) string {
	switch p {
	case ProfileANSI256:
		return c.Ansi256Background()
	case ProfileTrueColor:
		return c.Background()
	default:
		return ""
	}
}

// DetectProfile resolves the output profile from the --color flag value.
// "auto" enables 24-bit color when stdout is a terminal, subject to the
// NO_COLOR and FORCE_COLOR environment variables.
func DetectProfile(mode string) (Profile, error) {
	switch mode {
	case "always":
		return ProfileTrueColor, nil
	case "never":
		return ProfileNone, nil
	case "256":
		return ProfileANSI256, nil
	case "auto", "":
		if isColorCapable() {
			return ProfileTrueColor, nil
		}

		return ProfileNone, nil
	default:
		return ProfileNone, fmt.Errorf("%w: unknown color mode %q", ErrInvalidColor, mode)
	}
}

func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
