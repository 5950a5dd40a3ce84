// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary lipgloss.Color
	Warning lipgloss.Color
	Muted   lipgloss.Color

	// Component styles
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Key      lipgloss.Style
	Bracket  lipgloss.Style
	Action   lipgloss.Style
	Position lipgloss.Style

	// Text styles
	MutedText lipgloss.Style
}

// New creates a new Styles instance with default Tokyo Night theme.
func New() *Styles {
	// Tokyo Night color palette
	primary := lipgloss.Color("#7aa2f7") // Blue
	warning := lipgloss.Color("#e0af68") // Yellow
	muted := lipgloss.Color("#565f89")   // Gray

	foreground := lipgloss.Color("#c0caf5") // Light foreground

	return &Styles{
		Primary: primary,
		Warning: warning,
		Muted:   muted,

		Footer: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("240")),

		Title: lipgloss.NewStyle().
			Foreground(foreground).
			Bold(true),

		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Bracket: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Action: lipgloss.NewStyle().
			Foreground(muted),

		Position: lipgloss.NewStyle().
			Foreground(warning),

		MutedText: lipgloss.NewStyle().
			Foreground(muted),
	}
}
