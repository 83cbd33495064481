// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package termcolor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Reset is the SGR sequence that restores the terminal's default style.
	Reset = "\x1b[0m"
	// Bold is the SGR sequence that switches to bold text.
	Bold = "\x1b[1m"

	prefix = "\x1b["
	suffix = "m"

	hexLen    = 6
	sbPadding = 16 // padding for the strings.Builder
)

// ErrInvalidColor is returned when a color descriptor cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// RGB is a single 24-bit color, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// FromHexInt converts a packed 0xRRGGBB value to an RGB.
func FromHexInt(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16 & 0xff),
		G: uint8(v >> 8 & 0xff),
		B: uint8(v & 0xff),
	}
}

// ParseHex parses a color descriptor of the form "RRGGBB" or "#RRGGBB".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != hexLen {
		return RGB{}, fmt.Errorf("%w: %q must be 6 hex digits", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColor, s)
	}

	return FromHexInt(uint32(v)), nil
}

// Hex returns the uppercase RRGGBB representation of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Foreground returns the 24-bit SGR sequence that sets this color as the
// foreground color.
func (c RGB) Foreground() string {
	return c.sgr(38)
}

// Background returns the 24-bit SGR sequence that sets this color as the
// background color.
func (c RGB) Background() string {
	return c.sgr(48)
}

func (c RGB) sgr(ground int) string {
	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	sb.WriteString(prefix)
	sb.WriteString(strconv.Itoa(ground))
	sb.WriteString(";2;")
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteString(";")
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteString(";")
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteString(suffix)

	return sb.String()
}

// Ansi256Foreground returns the closest xterm-256 foreground sequence.
func (c RGB) Ansi256Foreground() string {
	return prefix + "38;5;" + strconv.Itoa(c.ansi256()) + suffix
}

// Ansi256Background returns the closest xterm-256 background sequence.
func (c RGB) Ansi256Background() string {
	return prefix + "48;5;" + strconv.Itoa(c.ansi256()) + suffix
}

// ansi256 maps the color onto the xterm palette: the 6x6x6 cube for colored
// values, the 24-step grayscale ramp when all channels are close together.
func (c RGB) ansi256() int {
	r, g, b := int(c.R), int(c.G), int(c.B)

	if isGrayish(r, g, b) {
		gray := (r + g + b) / 3
		if gray < 8 {
			return 16 // cube black
		}

		if gray > 248 {
			return 231 // cube white
		}

		return 232 + (gray-8)/10
	}

	return 16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b)
}

func cubeIndex(v int) int {
	if v < 48 {
		return 0
	}

	if v < 115 {
		return 1
	}

	return (v - 35) / 40
}

func isGrayish(r, g, b int) bool {
	const tolerance = 10

	max := max(r, g, b)
	min := min(r, g, b)

	return max-min <= tolerance
}
