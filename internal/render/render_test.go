// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/KolibroidAmy/prettycat/internal/gradient"
	"github.com/KolibroidAmy/prettycat/internal/pattern"
	"github.com/KolibroidAmy/prettycat/internal/stripe"
	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = termcolor.RGB{R: 255}
	blue = termcolor.RGB{B: 255}

	sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

func stripSGR(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

func flagColorizer(t *testing.T, m stripe.Mapper, colors ...termcolor.RGB) Flag {
	t.Helper()

	p, err := pattern.FromColors(colors...)
	require.NoError(t, err)

	return Flag{Mapper: m, Sampler: gradient.New(p, 0)}
}

func renderString(t *testing.T, r *Renderer, input string) string {
	t.Helper()

	var out bytes.Buffer
	require.NoError(t, r.Copy(context.Background(), &out, strings.NewReader(input)))

	return out.String()
}

func TestTwoStopHorizontalLine(t *testing.T) {
	// Two stops red and blue, horizontal, half a cycle per column: 'A' at
	// column 0 is exactly red, 'B' at column 1 sits mid-gradient.
	c := flagColorizer(t, stripe.Mapper{Orientation: stripe.Horizontal, Speed: 0.25}, red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor})

	got := renderString(t, r, "AB")

	want := red.Foreground() + "A" + termcolor.RGB{R: 128, B: 128}.Foreground() + "B" + termcolor.Reset
	assert.Equal(t, want, got)
}

func TestRedundantEscapesSuppressed(t *testing.T) {
	// A vertical gradient keeps one color per line; only one escape should
	// be emitted for the whole line.
	c := flagColorizer(t, stripe.Mapper{Orientation: stripe.Vertical, Speed: 0.25}, red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor})

	got := renderString(t, r, "hello")

	assert.Equal(t, 1, strings.Count(got, "\x1b[38;2;"))
}

func TestRoundTripPassthrough(t *testing.T) {
	inputs := []string{
		"hello world\n",
		"tabs\there\nand\rmore",
		"multi-line\ninput\nwith trailing newline\n",
		"unicode héllo ✓ 日本語\n",
		string([]byte{'o', 'k', 0xFF, 0xC3, '!', '\n'}),
	}

	c := flagColorizer(t, stripe.DefaultMapper(), red, blue)

	for _, in := range inputs {
		r := New(c, Config{Profile: termcolor.ProfileTrueColor})
		got := renderString(t, r, in)

		assert.Equal(t, in, stripSGR(got), "stripping escapes must reproduce the input")
	}
}

func TestIdempotence(t *testing.T) {
	c := flagColorizer(t, stripe.DefaultMapper(), red, blue, termcolor.RGB{G: 255})
	in := "the same input\nrendered twice\nis byte identical\n"

	r1 := New(c, Config{Profile: termcolor.ProfileTrueColor})
	r2 := New(c, Config{Profile: termcolor.ProfileTrueColor})

	assert.Equal(t, renderString(t, r1, in), renderString(t, r2, in))
}

func TestInvalidBytesDoNotShiftColumns(t *testing.T) {
	c := flagColorizer(t, stripe.Mapper{Orientation: stripe.Horizontal, Speed: 0.1}, red, blue)

	// The invalid byte passes through but occupies no column, so the ASCII
	// text after it must be colored exactly as if it were absent.
	withJunk := renderString(t, New(c, Config{Profile: termcolor.ProfileTrueColor}), string([]byte{0xC3})+"AB")
	clean := renderString(t, New(c, Config{Profile: termcolor.ProfileTrueColor}), "AB")

	assert.Equal(t, clean, strings.Replace(withJunk, string([]byte{0xC3}), "", 1))
}

func TestSourceColorsSwallowed(t *testing.T) {
	c := flagColorizer(t, stripe.Mapper{Orientation: stripe.Vertical, Speed: 0.25}, red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor})

	got := renderString(t, r, "a\x1b[31mb")

	assert.NotContains(t, got, "\x1b[31m", "source SGR color must not reach the output")
	assert.Equal(t, "ab", stripSGR(got))
}

func TestSourceResetReappliesColor(t *testing.T) {
	c := flagColorizer(t, stripe.Mapper{Orientation: stripe.Vertical, Speed: 0.25}, red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor})

	got := renderString(t, r, "a\x1b[0mb")

	// The source reset is forwarded, then our color is re-applied before b.
	resetAt := strings.Index(got, termcolor.Reset)
	require.GreaterOrEqual(t, resetAt, 0)

	after := got[resetAt+len(termcolor.Reset):]
	assert.True(t, strings.HasPrefix(after, red.Foreground()), "active color must be re-applied after a source reset")
}

func TestCursorMoveTracked(t *testing.T) {
	c := flagColorizer(t, stripe.Mapper{Orientation: stripe.Horizontal, Speed: 0.25}, red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor})

	// Cursor right by 2: the next grapheme is colored for column 3, halfway
	// through the wrap-around segment.
	got := renderString(t, r, "a\x1b[2Cb")

	assert.Contains(t, got, "\x1b[2C", "cursor moves are forwarded")

	wantB := termcolor.RGB{R: 128, B: 128}.Foreground() + "b"
	assert.Contains(t, got, wantB)
}

func TestAlwaysEndsWithReset(t *testing.T) {
	c := flagColorizer(t, stripe.DefaultMapper(), red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor})

	got := renderString(t, r, "no trailing newline")

	assert.True(t, strings.HasSuffix(got, termcolor.Reset))
}

func TestCancellationStillResets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := flagColorizer(t, stripe.DefaultMapper(), red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor})

	var out bytes.Buffer

	err := r.Copy(ctx, &out, strings.NewReader("some\ninput\n"))
	require.ErrorIs(t, err, context.Canceled)

	assert.True(t, strings.HasSuffix(out.String(), termcolor.Reset), "cancellation must still reset the terminal")
}

func TestProfileNoneEmitsNoEscapes(t *testing.T) {
	c := flagColorizer(t, stripe.DefaultMapper(), red, blue)
	r := New(c, Config{Profile: termcolor.ProfileNone})

	got := renderString(t, r, "plain\n")

	assert.Equal(t, "plain\n", got)
}

func TestTabAdvancesToTabStop(t *testing.T) {
	c := flagColorizer(t, stripe.Mapper{Orientation: stripe.Horizontal, Speed: 0.0625}, red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor, TabSize: 8})

	// After the tab the cursor sits at column 8.
	got := renderString(t, r, "a\tb")

	wantB := termcolor.RGB{B: 255}.Foreground() + "b"
	assert.Contains(t, got, wantB)
}

func TestWrapColumnAdvancesRow(t *testing.T) {
	// With a 2-column terminal and a vertical gradient, the third grapheme
	// has wrapped onto the next row and picks up its color.
	c := flagColorizer(t, stripe.Mapper{Orientation: stripe.Vertical, Speed: 0.25}, red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor, WrapColumn: 2})

	got := renderString(t, r, "abcd")

	assert.Equal(t, 2, strings.Count(got, "\x1b[38;2;"), "wrap must advance the row and change the color")
}

func TestReadErrorWrapped(t *testing.T) {
	c := flagColorizer(t, stripe.DefaultMapper(), red, blue)
	r := New(c, Config{Profile: termcolor.ProfileTrueColor})

	var out bytes.Buffer

	err := r.Copy(context.Background(), &out, &failingReader{})
	require.ErrorIs(t, err, ErrRead)
	assert.True(t, strings.HasSuffix(out.String(), termcolor.Reset))
}

type failingReader struct{}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestCopyRaw(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, CopyRaw(&out, strings.NewReader("verbatim\x1b[31m bytes")))
	assert.Equal(t, "verbatim\x1b[31m bytes", out.String())
}
