// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package imgrender

import (
	"strings"

	"github.com/KolibroidAmy/prettycat/internal/termcolor"
)

// RenderRows renders the frame rows [start, start+count) as lines of
// background-colored spaces, one line per pixel row. Adjacent pixels of the
// same color share one escape sequence. Each line ends with a reset so
// nothing bleeds past the image edge.
func RenderRows(f *Frame, profile termcolor.Profile, start, count int) string {
	var b strings.Builder

	end := min(start+count, f.Height())

	for y := max(start, 0); y < end; y++ {
		var (
			active   termcolor.RGB
			hasColor bool
		)

		for x := 0; x < f.Width(); x++ {
			c := f.At(x, y)
			if !hasColor || c != active {
				active = c
				hasColor = true

				b.WriteString(profile.Background(c))
			}

			b.WriteByte(' ')
		}

		if profile != termcolor.ProfileNone {
			b.WriteString(termcolor.Reset)
		}

		b.WriteByte('\n')
	}

	return b.String()
}

// ScrollBuffer pages a frame through fixed-height screens. The caller
// decides when to pull the next screen, so pacing (interactive paging or
// plain sequential output) stays out of the rendering path.
type ScrollBuffer struct {
	frame   *Frame
	profile termcolor.Profile
	rows    int
	cursor  int
}

// NewScrollBuffer creates a pager over the frame showing rows pixel rows
// per screen. A non-positive rows shows the whole frame in one screen.
func NewScrollBuffer(f *Frame, profile termcolor.Profile, rows int) *ScrollBuffer {
	if rows <= 0 {
		rows = f.Height()
	}

	return &ScrollBuffer{frame: f, profile: profile, rows: rows}
}

// Screens returns how many screens the frame occupies.
func (s *ScrollBuffer) Screens() int {
	return (s.frame.Height() + s.rows - 1) / s.rows
}

// More reports whether NextScreen has anything left to return.
func (s *ScrollBuffer) More() bool {
	return s.cursor < s.frame.Height()
}

// NextScreen renders the next screenful of rows and advances the cursor.
// It returns ok=false once the frame is exhausted.
func (s *ScrollBuffer) NextScreen() (string, bool) {
	if !s.More() {
		return "", false
	}

	out := RenderRows(s.frame, s.profile, s.cursor, s.rows)
	s.cursor += s.rows

	return out, true
}
