// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui hosts the picker in a terminal using Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/themepicker/internal/picker"
	"github.com/janderssonse/themepicker/internal/render"
	"github.com/janderssonse/themepicker/internal/tui/styles"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Model is the Bubble Tea model of the terminal picker.
//
//nolint:containedctx // TUI models require context for apply cancellation
type Model struct {
	ctx        context.Context
	controller *picker.Controller
	engine     *render.Engine
	base       render.Layout
	surface    *cellSurface
	styles     *styles.Styles
	keys       KeyMap

	width  int
	height int
	dirty  bool

	picked   string
	quitting bool
}

// NewModel creates the picker model. base supplies the thumbnail aspect and
// dimming; the rest of the layout follows the terminal size.
func NewModel(ctx context.Context, controller *picker.Controller, engine *render.Engine) *Model {
	return &Model{
		ctx:        ctx,
		controller: controller,
		engine:     engine,
		base:       engine.Layout(),
		surface:    &cellSurface{},
		styles:     styles.New(),
		keys:       DefaultKeyMap(),
	}
}

// Picked returns the name of the applied theme, or "" when the user quit.
func (m *Model) Picked() string {
	return m.picked
}

// Init implements the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the tea.Model interface.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true

			return m, tea.Quit
		}

		switch m.controller.HandleKey(m.ctx, m.keys.Translate(msg)) {
		case picker.Done:
			m.picked = m.controller.Picked()
			m.quitting = true

			return m, tea.Quit
		case picker.Redraw:
			m.dirty = true
		case picker.Ignored:
		}
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	layout := LayoutFor(m.base, width, height)
	m.engine.SetLayout(layout)
	m.controller.State().SetGeometry(layout.Geometry(width))

	m.surface.width = width
	m.surface.height = PixelHeight(height)
	m.dirty = true
}

// View implements the tea.Model interface.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading themes..."
	}

	if m.dirty {
		m.engine.Render(m.controller.State(), m.surface)
		m.dirty = false
	}

	state := m.controller.State()

	var name string
	if entry, ok := state.Confirm(); ok {
		name = entry.Name
	}

	footer := renderFooter(m.styles, m.width, name, state.Selected()+1, state.Len(), m.keys.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, m.surface.String(), footer)
}

// Run starts the terminal picker and returns the applied theme name, or ""
// when the user quit without picking.
func Run(ctx context.Context, controller *picker.Controller, engine *render.Engine) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", ErrNoTerminal
	}

	model := NewModel(ctx, controller, engine)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return "", fmt.Errorf("TUI application failed: %w", err)
	}

	return model.Picked(), nil
}
