// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exitcodes defines the process exit codes shared by the commands.
package exitcodes

const (
	// Success means the stream was rendered completely.
	Success = 0
	// InvalidPattern covers unparseable patterns, unknown presets and bad
	// flag values.
	InvalidPattern = 2
	// InputIO covers unreadable inputs and output write failures.
	InputIO = 3
	// ImageDecode covers unreadable or unsupported image files.
	ImageDecode = 4
	// EmptyImage covers decoded images with a zero dimension.
	EmptyImage = 5
)
