// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package console

import (
	"strconv"
	"strings"
)

// EscapeClass says what an incoming ANSI escape sequence does, as far as the
// renderer cares: it either changes style, moves the cursor, or is none of
// our business.
type EscapeClass int

const (
	// EscapeOther is any sequence the renderer forwards untouched.
	EscapeOther EscapeClass = iota
	// EscapeResetStyle is SGR 0.
	EscapeResetStyle
	// EscapeSetColor is an SGR color change from the source stream.
	EscapeSetColor
	// EscapeCursorSet positions the cursor absolutely.
	EscapeCursorSet
	// EscapeCursorMove moves the cursor relatively.
	EscapeCursorMove
)

// colToLineStart is the column delta used by cursor-next-line and
// cursor-previous-line sequences; saturating arithmetic clamps it to the
// start of the line.
const colToLineStart = -1 << 48

// EscapeInfo is the classification of one escape sequence. For EscapeCursorSet
// Col/Row are absolute zero-based positions; for EscapeCursorMove they are
// signed deltas. The Valid flags mark which of the two are present.
type EscapeInfo struct {
	Class    EscapeClass
	Col, Row int
	ColValid bool
	RowValid bool
}

// ClassifyEscape inspects a complete escape sequence.
func ClassifyEscape(seq string) EscapeInfo {
	if len(seq) <= 2 {
		return EscapeInfo{Class: EscapeOther}
	}

	args := seq[2 : len(seq)-1]
	final := seq[len(seq)-1]

	if final == 'm' {
		if strings.HasPrefix(seq[1:], "[3") || strings.HasPrefix(seq[1:], "[4") || strings.HasPrefix(seq[1:], "[9") || strings.HasPrefix(seq[1:], "[10") {
			return EscapeInfo{Class: EscapeSetColor}
		}

		if mode, _ := takeArgument(args, 0); mode == 0 {
			return EscapeInfo{Class: EscapeResetStyle}
		}

		return EscapeInfo{Class: EscapeOther}
	}

	switch final {
	case 'A':
		n, _ := takeArgument(args, 1)
		return EscapeInfo{Class: EscapeCursorMove, Row: -n, RowValid: true}
	case 'B':
		n, _ := takeArgument(args, 1)
		return EscapeInfo{Class: EscapeCursorMove, Row: n, RowValid: true}
	case 'C':
		n, _ := takeArgument(args, 1)
		return EscapeInfo{Class: EscapeCursorMove, Col: n, ColValid: true}
	case 'D':
		n, _ := takeArgument(args, 1)
		return EscapeInfo{Class: EscapeCursorMove, Col: -n, ColValid: true}
	case 'E':
		n, _ := takeArgument(args, 1)
		return EscapeInfo{Class: EscapeCursorMove, Col: colToLineStart, ColValid: true, Row: n, RowValid: true}
	case 'F':
		n, _ := takeArgument(args, 1)
		return EscapeInfo{Class: EscapeCursorMove, Col: colToLineStart, ColValid: true, Row: -n, RowValid: true}
	case 'G':
		col, _ := takeArgument(args, 1)
		return EscapeInfo{Class: EscapeCursorSet, Col: col - 1, ColValid: true}
	case 'H':
		row, rest := takeArgument(args, 1)
		col, _ := takeArgument(rest, 1)

		return EscapeInfo{Class: EscapeCursorSet, Col: col - 1, ColValid: true, Row: row - 1, RowValid: true}
	default:
		return EscapeInfo{Class: EscapeOther}
	}
}

// takeArgument parses one numeric argument off the front of a semicolon
// separated list, falling back to def when absent or unparseable.
func takeArgument(args string, def int) (int, string) {
	if args == "" {
		return def, ""
	}

	head, rest, found := strings.Cut(args, ";")
	if !found {
		rest = ""
	}

	v, err := strconv.Atoi(head)
	if err != nil {
		return def, rest
	}

	return v, rest
}
