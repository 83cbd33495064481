// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"

	"github.com/KolibroidAmy/prettycat/internal/console"
	"github.com/KolibroidAmy/prettycat/internal/termcolor"
)

var (
	// ErrRead is returned when the input stream fails.
	ErrRead = errors.New("failed to read input")
	// ErrWrite is returned when the output stream fails.
	ErrWrite = errors.New("failed to write output")
)

const (
	// DefaultTabSize matches the usual terminal tab stop.
	DefaultTabSize = 8

	// ctxCheckInterval bounds how many elements are processed between
	// cancellation checks on a single unbounded line.
	ctxCheckInterval = 4096
)

// Config controls a text render pass.
type Config struct {
	// Profile selects the escape sequence format; ProfileNone renders
	// uncolored.
	Profile termcolor.Profile
	// WrapColumn is the column at which the terminal wraps output, so the
	// colorizer can be queried with post-wrap coordinates. Zero disables
	// wrap tracking.
	WrapColumn int
	// TabSize is the tab stop width; zero means DefaultTabSize.
	TabSize int
	// FlushOnNewline flushes the output buffer at each line terminator,
	// keeping interactive pipelines responsive.
	FlushOnNewline bool
}

// Renderer streams text through a colorizer. A renderer owns its mutable
// position state for the duration of one Copy and must not be shared across
// concurrent copies.
type Renderer struct {
	colorizer Colorizer
	cfg       Config
}

// New creates a text renderer.
func New(c Colorizer, cfg Config) *Renderer {
	if cfg.TabSize <= 0 {
		cfg.TabSize = DefaultTabSize
	}

	return &Renderer{colorizer: c, cfg: cfg}
}

// Copy streams src to dst, coloring printable graphemes. It always emits a
// final reset sequence while the sink remains writable, whether it returns
// normally, on error, or on context cancellation.
func (r *Renderer) Copy(ctx context.Context, dst io.Writer, src io.Reader) (err error) {
	bw := bufio.NewWriter(dst)

	defer func() {
		if r.cfg.Profile != termcolor.ProfileNone {
			_, _ = bw.WriteString(termcolor.Reset)
		}

		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = errors.Join(ErrWrite, ferr)
		}
	}()

	wrap := r.cfg.WrapColumn
	if wrap <= 0 {
		wrap = math.MaxInt
	}

	var row, col int

	active := r.colorizer.ColorAt(0, 0)
	if _, err := bw.WriteString(r.cfg.Profile.Foreground(active)); err != nil {
		return errors.Join(ErrWrite, err)
	}

	sc := console.NewScanner(src)

	for n := 0; sc.Scan(); n++ {
		if n%ctxCheckInterval == 0 {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
		}

		elem := sc.Element()

		switch elem.Kind {
		case console.KindGrapheme:
			c := r.colorizer.ColorAt(row, col)
			if c != active {
				active = c
				if _, err := bw.WriteString(r.cfg.Profile.Foreground(c)); err != nil {
					return errors.Join(ErrWrite, err)
				}
			}

			if _, err := bw.Write(elem.Bytes); err != nil {
				return errors.Join(ErrWrite, err)
			}

			col += elem.Width()
			if col >= wrap {
				col -= wrap
				row++
			}

		case console.KindNewline:
			row++
			col = 0

			if _, err := bw.Write(elem.Bytes); err != nil {
				return errors.Join(ErrWrite, err)
			}

			if r.cfg.FlushOnNewline {
				if err := bw.Flush(); err != nil {
					return errors.Join(ErrWrite, err)
				}
			}

			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}

		case console.KindCarriageReturn:
			col = 0

			if _, err := bw.Write(elem.Bytes); err != nil {
				return errors.Join(ErrWrite, err)
			}

		case console.KindTab:
			col = (col/r.cfg.TabSize + 1) * r.cfg.TabSize
			if col >= wrap {
				col = wrap - 1
			}

			if _, err := bw.Write(elem.Bytes); err != nil {
				return errors.Join(ErrWrite, err)
			}

		case console.KindEscape:
			if err := r.handleEscape(bw, elem.Bytes, &row, &col, active); err != nil {
				return err
			}

		case console.KindControl, console.KindRawByte:
			// Pass through uncolored, no column advance.
			if _, err := bw.Write(elem.Bytes); err != nil {
				return errors.Join(ErrWrite, err)
			}
		}
	}

	if serr := sc.Err(); serr != nil {
		return errors.Join(ErrRead, serr)
	}

	return nil
}

// handleEscape intercepts escape sequences arriving on the input stream.
// Color changes from the source are swallowed so they cannot fight our
// coloring; a style reset is forwarded and the active color re-applied;
// cursor movement is forwarded with the tracked position updated so colors
// still line up afterwards.
func (r *Renderer) handleEscape(bw *bufio.Writer, seq []byte, row, col *int, active termcolor.RGB) error {
	info := console.ClassifyEscape(string(seq))

	switch info.Class {
	case console.EscapeSetColor:
		return nil

	case console.EscapeResetStyle:
		if _, err := bw.Write(seq); err != nil {
			return errors.Join(ErrWrite, err)
		}

		if _, err := bw.WriteString(r.cfg.Profile.Foreground(active)); err != nil {
			return errors.Join(ErrWrite, err)
		}

		return nil

	case console.EscapeCursorSet:
		if info.ColValid {
			*col = max(info.Col, 0)
		}

		if info.RowValid {
			*row = max(info.Row, 0)
		}

	case console.EscapeCursorMove:
		if info.ColValid {
			*col = saturatingAdd(*col, info.Col)
		}

		if info.RowValid {
			*row = saturatingAdd(*row, info.Row)
		}
	}

	if _, err := bw.Write(seq); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

func saturatingAdd(v, d int) int {
	s := v + d
	if s < 0 {
		return 0
	}

	return s
}

// CopyRaw is the no-op path: a plain byte copy with no coloring at all,
// equivalent to cat.
func CopyRaw(dst io.Writer, src io.Reader) error {
	if _, err := io.Copy(dst, src); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}
