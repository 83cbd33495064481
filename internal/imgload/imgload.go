// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package imgload decodes image files into frames. PNG, JPEG and GIF are
// registered; for animated GIFs only the first frame is used.
package imgload

import (
	"errors"
	"fmt"
	"image"

	// Register the supported decoders with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/KolibroidAmy/prettycat/internal/imgrender"
	"github.com/spf13/afero"
)

// ErrDecodeImage is returned when a file cannot be opened or decoded.
var ErrDecodeImage = errors.New("failed to decode image")

// Load reads and decodes the image at path into a frame.
func Load(fs afero.Fs, path string) (*imgrender.Frame, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrDecodeImage, path, err)
	}

	defer f.Close() //nolint:errcheck // read-only handle

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrDecodeImage, path, err)
	}

	frame, err := imgrender.NewFrame(img)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return frame, nil
}
