// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Kind identifies the class of a stream element.
type Kind int

const (
	// KindGrapheme is a printable grapheme cluster, colored as one unit.
	KindGrapheme Kind = iota
	// KindNewline is a line feed.
	KindNewline
	// KindCarriageReturn moves the cursor to the beginning of the line.
	KindCarriageReturn
	// KindTab snaps the cursor to the next tab stop.
	KindTab
	// KindEscape is a complete ANSI escape sequence.
	KindEscape
	// KindControl is any other control character; it is never colored.
	KindControl
	// KindRawByte is a single byte that is not valid UTF-8. It passes
	// through unmodified and does not occupy a column.
	KindRawByte
)

// Element is one unit of terminal output.
type Element struct {
	Kind  Kind
	Bytes []byte
}

// Width returns the number of terminal columns the element occupies.
// Only graphemes and tabs advance the cursor; a grapheme always occupies at
// least one cell because the terminal has to put it somewhere.
func (e Element) Width() int {
	if e.Kind != KindGrapheme {
		return 0
	}

	w := runewidth.StringWidth(string(e.Bytes))
	if w < 1 {
		w = 1
	}

	return w
}

const (
	esc = 0x1b
	del = 0x7f
)

// Scanner yields successive Elements from a reader.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner creates a streaming element scanner over r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Split(splitElement)

	return &Scanner{s: s}
}

// Scan advances to the next element. It returns false at end of input or on
// a read error, which is then reported by Err.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Element returns the current element. The returned bytes are only valid
// until the next call to Scan.
func (s *Scanner) Element() Element {
	token := s.s.Bytes()

	return Element{Kind: classify(token), Bytes: token}
}

// Err returns the first error encountered while reading.
func (s *Scanner) Err() error {
	return s.s.Err()
}

func classify(token []byte) Kind {
	switch token[0] {
	case '\n':
		return KindNewline
	case '\r':
		return KindCarriageReturn
	case '\t':
		return KindTab
	case esc:
		return KindEscape
	}

	if token[0] < 0x20 || token[0] == del {
		return KindControl
	}

	if r, _ := utf8.DecodeRune(token); r == utf8.RuneError && len(token) == 1 {
		return KindRawByte
	}

	return KindGrapheme
}

// splitElement is the bufio.SplitFunc that cuts the stream into one element
// per token. Elements that may be cut off at the edge of the buffer (escape
// sequences, multi-byte runes, extending grapheme clusters) are withheld
// until more data arrives or true EOF settles them.
func splitElement(data []byte, atEOF bool) (int, []byte, error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	b := data[0]

	switch {
	case b == '\n' || b == '\r' || b == '\t':
		return 1, data[:1], nil
	case b == esc:
		return splitEscape(data, atEOF)
	case b < 0x20 || b == del:
		return 1, data[:1], nil
	}

	valid := validPrefixLen(data)
	if valid == 0 {
		// Either an invalid byte, or a rune truncated at the buffer edge.
		if !atEOF && possiblePrefix(data) {
			return 0, nil, nil
		}

		return 1, data[:1], nil
	}

	cluster, rest, _, _ := uniseg.FirstGraphemeCluster(data[:valid], -1)
	if len(rest) == 0 && valid == len(data) && !atEOF {
		// The cluster reaches the end of the window and could still be
		// extended by a combining character.
		return 0, nil, nil
	}

	return len(cluster), cluster, nil
}

// splitEscape consumes an ANSI escape sequence: ESC, optionally '[', then
// everything up to and including the first final byte (above 0x40).
func splitEscape(data []byte, atEOF bool) (int, []byte, error) {
	for i := 1; i < len(data); i++ {
		if data[i] > 0x40 && !(data[i] == '[' && i == 1) {
			return i + 1, data[:i+1], nil
		}
	}

	if atEOF {
		// Truncated sequence at true end of input; forward it as-is.
		return len(data), data, nil
	}

	return 0, nil, nil
}

// validPrefixLen returns the length of the longest prefix of data that is
// whole, valid UTF-8.
func validPrefixLen(data []byte) int {
	n := 0

	for n < len(data) {
		r, size := utf8.DecodeRune(data[n:])
		if r == utf8.RuneError && size <= 1 {
			break
		}

		n += size
	}

	return n
}

// possiblePrefix reports whether data could be the beginning of a valid
// multi-byte rune that has been cut off at the buffer edge.
func possiblePrefix(data []byte) bool {
	if len(data) >= utf8.UTFMax {
		return false
	}

	if !utf8.RuneStart(data[0]) || data[0] < 0x80 {
		return false
	}

	for _, b := range data[1:] {
		if b&0xc0 != 0x80 {
			return false
		}
	}

	return true
}
