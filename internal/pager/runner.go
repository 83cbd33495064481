// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package pager

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrPager is returned when the interactive view fails to run.
var ErrPager = errors.New("failed to run pager")

// Run shows the content full-screen and blocks until the user quits or the
// context is cancelled. The terminal is restored on exit.
func Run(ctx context.Context, title, content string) error {
	model := NewModel(title, content)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}

		return errors.Join(ErrPager, err)
	}

	return nil
}
