// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/themepicker/internal/picker"
)

// KeyEnter is the confirm key name.
const KeyEnter = "enter"

// KeyMap defines the picker key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(KeyEnter),
			key.WithHelp(KeyEnter, "apply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate maps a key message to a picker key.
func (k KeyMap) Translate(msg tea.KeyMsg) picker.Key {
	switch {
	case key.Matches(msg, k.Left):
		return picker.KeyLeft
	case key.Matches(msg, k.Right):
		return picker.KeyRight
	case key.Matches(msg, k.Confirm):
		return picker.KeyConfirm
	default:
		return picker.KeyUnknown
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Quit}
}
