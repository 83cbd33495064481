// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package termcolor provides the RGB color value used throughout prettycat
// and its ANSI escape sequence wire format. It emits 24-bit SGR sequences by
// default and can degrade to the xterm 256-color palette. Output capability
// detection honors the NO_COLOR and FORCE_COLOR environment variables and
// falls back to terminal detection via the golang.org/x/term package.
package termcolor
