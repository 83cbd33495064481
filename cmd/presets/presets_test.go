// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package presets

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runPresets(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	stubs := gostub.Stub(&fsys, fs)
	stubs.Stub(&cli.OsExiter, func(int) {})

	defer stubs.Reset()

	var out bytes.Buffer

	cmd := NewCommand()
	cmd.Writer = &out

	err := cmd.Run(context.Background(), append([]string{"presets"}, args...))

	return out.String(), err
}

func TestPresetsListsBuiltins(t *testing.T) {
	out, err := runPresets(t, afero.NewMemMapFs(), "--color", "never")
	require.NoError(t, err)

	for _, name := range []string{"pride", "progress", "lesbian", "gay", "bi", "trans"} {
		assert.Contains(t, out, name)
	}

	assert.Contains(t, out, "(rainbow)")
}

func TestPresetsSwatchesUseStripeColors(t *testing.T) {
	out, err := runPresets(t, afero.NewMemMapFs(), "--color", "always")
	require.NoError(t, err)

	// The trans flag's first stripe.
	assert.Contains(t, out, termcolor.RGB{R: 0x5B, G: 0xCE, B: 0xFA}.Foreground()+swatch)
	assert.Contains(t, out, termcolor.Reset)
}

func TestPresetsNameColumnAligned(t *testing.T) {
	out, err := runPresets(t, afero.NewMemMapFs(), "--color", "always")
	require.NoError(t, err)

	deansi := strings.NewReplacer(termcolor.Bold, "", termcolor.Reset, "")

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		idx := strings.Index(line, "\x1b[38;2;")
		require.GreaterOrEqual(t, idx, 0, "every line carries colored swatches")

		// Style bytes must not count toward the name column.
		assert.Len(t, deansi.Replace(line[:idx]), nameColumnWidth+1,
			"swatches start in the same column on every line")
	}
}

func TestPresetsIncludesFlagFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `flags:
  - name: duotone
    aliases: [two]
    stripes: ["FF0000", "0000FF"]
`
	require.NoError(t, afero.WriteFile(fs, "flags.yaml", []byte(doc), 0o644))

	out, err := runPresets(t, fs, "--flag-file", "flags.yaml", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "duotone (two)")
	assert.Greater(t, strings.Count(out, "\n"), 6, "user presets are listed after the built-ins")
}

func TestPresetsBadFlagFile(t *testing.T) {
	_, err := runPresets(t, afero.NewMemMapFs(), "--flag-file", "missing.yaml")
	require.Error(t, err)
}
