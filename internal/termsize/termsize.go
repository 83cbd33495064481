// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package termsize reports the dimensions of the controlling terminal.
package termsize

import (
	"os"

	"golang.org/x/term"
)

const (
	// FallbackColumns is used when stdout is not a terminal.
	FallbackColumns = 80
	// FallbackRows is used when stdout is not a terminal.
	FallbackRows = 24
)

// sizeFn is stubbed in tests.
var sizeFn = term.GetSize

// Size returns the terminal size in cells, falling back to 80x24 when
// stdout is not a terminal or the query fails.
func Size() (columns, rows int) {
	w, h, err := sizeFn(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return FallbackColumns, FallbackRows
	}

	return w, h
}
