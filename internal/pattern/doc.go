// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pattern models a flag as an ordered sequence of weighted color
// stops. A Pattern is immutable once constructed: it is either resolved from
// the built-in preset catalog, parsed from a --custom descriptor, or loaded
// from a YAML flag file. Construction normalizes stop weights to sum to one
// and precomputes the cumulative boundary offsets consumed by the gradient
// sampler.
package pattern
