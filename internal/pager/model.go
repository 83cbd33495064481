// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package pager

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the pager chrome.
type Styles struct {
	Title lipgloss.Style
	Help  lipgloss.Style
}

// DefaultStyles returns the default pager styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true),
		Help:  lipgloss.NewStyle().Faint(true),
	}
}

// Model is the bubbletea model for the image pager.
type Model struct {
	title    string
	viewport viewport.Model
	styles   Styles
	ready    bool
	quitting bool
}

// NewModel creates a pager model over the pre-rendered content.
func NewModel(title, content string) *Model {
	vp := viewport.New(0, 0)
	vp.SetContent(content)

	return &Model{
		title:    title,
		viewport: vp,
		styles:   DefaultStyles(),
	}
}

// chromeHeight is the number of rows taken by the title and help lines.
const chromeHeight = 2

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	title := m.styles.Title.Render(m.title)
	help := m.styles.Help.Render("space/pgdn next page, b/pgup back, q to quit")

	return title + "\n" + m.viewport.View() + "\n" + help
}
