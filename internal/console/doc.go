// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console splits a byte stream into the elements a terminal renders:
// grapheme clusters, line terminators, tabs, ANSI escape sequences, control
// characters and raw non-UTF-8 bytes. The scanner is streaming and never
// buffers more than one element of lookahead beyond the bufio window, so it
// can process unbounded input. Bytes are never altered: concatenating the
// bytes of every element reproduces the input exactly.
package console
