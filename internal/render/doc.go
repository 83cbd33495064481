// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render copies a byte stream to an output sink, coloring every
// printable grapheme from a positional colorizer. Input bytes are never
// altered: stripping the emitted SGR sequences from the output reproduces
// the input exactly. A reset sequence is written on every exit path so the
// terminal is never left with a dangling color, including on error and
// cancellation.
package render
