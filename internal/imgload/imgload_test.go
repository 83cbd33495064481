// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package imgload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, fs afero.Fs, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "flag.png", 3, 2)

	frame, err := Load(fs, "flag.png")
	require.NoError(t, err)

	assert.Equal(t, 3, frame.Width())
	assert.Equal(t, 2, frame.Height())
	assert.Equal(t, termcolor.RGB{R: 200, G: 100, B: 50}, frame.At(1, 1))
}

func TestLoadMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "nope.png")
	require.ErrorIs(t, err, ErrDecodeImage)
}

func TestLoadNotAnImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "junk.png", []byte("not a png"), 0o644))

	_, err := Load(fs, "junk.png")
	require.ErrorIs(t, err, ErrDecodeImage)
}
