// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package cat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KolibroidAmy/prettycat/cmd/exitcodes"
	"github.com/KolibroidAmy/prettycat/internal/imgload"
	"github.com/KolibroidAmy/prettycat/internal/imgrender"
	"github.com/KolibroidAmy/prettycat/internal/pattern"
	"github.com/KolibroidAmy/prettycat/internal/termcolor"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runCat executes the cat command with a memory filesystem, capturing the
// output and the exit code the cli framework would have used.
func runCat(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, int, error) {
	t.Helper()

	exitCode := exitcodes.Success
	stubs := gostub.Stub(&fsys, fs)
	stubs.Stub(&cli.OsExiter, func(code int) {
		exitCode = code
	})

	defer stubs.Reset()

	var out bytes.Buffer

	cmd := NewCommand()
	cmd.Writer = &out
	cmd.Reader = strings.NewReader(stdin)

	err := cmd.Run(context.Background(), append([]string{"cat"}, args...))

	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		exitCode = coder.ExitCode()
	}

	return out.String(), exitCode, err
}

func TestCatTwoStopLine(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, code, err := runCat(t, fs, "AB",
		"--custom", "FF0000,0000FF",
		"--orientation", "horizontal",
		"--speed", "0.25",
		"--deadzone", "0",
		"--color", "always",
	)
	require.NoError(t, err)
	assert.Equal(t, exitcodes.Success, code)

	red := termcolor.RGB{R: 255}
	mid := termcolor.RGB{R: 128, B: 128}
	want := red.Foreground() + "A" + mid.Foreground() + "B" + termcolor.Reset
	assert.Equal(t, want, out)
}

func TestCatEmptyCustomPatternFailsBeforeOutput(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, code, err := runCat(t, fs, "hello", "--custom", "", "--color", "always")
	require.Error(t, err)
	assert.Equal(t, exitcodes.InvalidPattern, code)
	assert.Empty(t, out, "no output may be written for an invalid pattern")
}

func TestCatUnknownPreset(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, code, err := runCat(t, fs, "hello", "--flag", "nosuchflag", "--color", "always")
	require.Error(t, err)
	assert.Equal(t, exitcodes.InvalidPattern, code)
}

func TestCatFilesConcatenated(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("one\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "b.txt", []byte("two\n"), 0o644))

	out, code, err := runCat(t, fs, "", "--noop", "a.txt", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, exitcodes.Success, code)
	assert.Equal(t, "one\ntwo\n", out)
}

func TestCatMissingFileStillProcessesRest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ok.txt", []byte("fine\n"), 0o644))

	out, code, err := runCat(t, fs, "", "--noop", "missing.txt", "ok.txt")
	require.Error(t, err)
	assert.Equal(t, exitcodes.InputIO, code)
	assert.Contains(t, out, "fine\n", "readable files are still copied")
}

func TestCatColorNever(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.txt", []byte("plain\n"), 0o644))

	out, code, err := runCat(t, fs, "", "--color", "never", "in.txt")
	require.NoError(t, err)
	assert.Equal(t, exitcodes.Success, code)
	assert.Equal(t, "plain\n", out)
}

func TestCatFlagFilePreset(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `flags:
  - name: duotone
    stripes: ["FF0000", "0000FF"]
`
	require.NoError(t, afero.WriteFile(fs, "flags.yaml", []byte(doc), 0o644))

	out, code, err := runCat(t, fs, "A",
		"--flag-file", "flags.yaml",
		"--flag", "duotone",
		"--deadzone", "0",
		"--color", "always",
	)
	require.NoError(t, err)
	assert.Equal(t, exitcodes.Success, code)
	assert.True(t, strings.HasPrefix(out, termcolor.RGB{R: 255}.Foreground()))
}

func TestCatImagePatternDecodeError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.png", []byte("not an image"), 0o644))

	_, code, err := runCat(t, fs, "text", "--image-pattern", "bad.png", "--color", "always")
	require.Error(t, err)
	assert.Equal(t, exitcodes.ImageDecode, code)
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty image", err: imgrender.ErrEmptyImage, want: exitcodes.EmptyImage},
		{name: "decode failure", err: imgload.ErrDecodeImage, want: exitcodes.ImageDecode},
		{name: "flag file unreadable", err: pattern.ErrReadFlagFile, want: exitcodes.InputIO},
		{name: "anything else", err: pattern.ErrInvalidPattern, want: exitcodes.InvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}
