// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pager presents a rendered image taller than the terminal as a
// scrollable full-screen view. It owns only presentation; the content is
// rendered up front and handed in as a string.
package pager
