// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package imgrender turns a decoded image into colored terminal cells. A
// Frame wraps the pixel grid; Resize derives a new frame fitted to the
// terminal; a ScrollBuffer pages frames taller than one screen through a
// pull interface, leaving pacing policy to the caller.
//
// Resizing uses nearest-neighbor sampling from golang.org/x/image/draw:
// it is deterministic for a fixed input, which the paging logic relies on,
// and keeps hard stripe edges crisp, which suits flag imagery.
package imgrender
