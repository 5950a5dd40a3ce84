// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/themepicker/internal/tui/styles"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English) //nolint:gochecknoglobals

// DisplayName turns a theme directory name into a title, e.g. "tokyo-night"
// becomes "Tokyo Night".
func DisplayName(name string) string {
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(name)

	return titleCaser.String(strings.Join(strings.Fields(spaced), " "))
}

// renderFooter shows the selected theme and the key bindings.
func renderFooter(st *styles.Styles, width int, name string, position, total int, bindings []key.Binding) string {
	actions := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		actions = append(actions,
			st.Bracket.Render("[")+st.Key.Render(h.Key)+st.Bracket.Render("]")+" "+st.Action.Render(h.Desc))
	}

	help := strings.Join(actions, "   ")
	inner := max(width-4, 1)

	if total == 0 {
		return st.Footer.Width(width).Render(st.MutedText.Render("No themes found") + "   " + help)
	}

	counter := fmt.Sprintf("%d/%d", position, total)
	room := inner - runewidth.StringWidth(counter) - lipgloss.Width(help) - 6
	title := runewidth.Truncate(DisplayName(name), max(room, 1), "…")

	return st.Footer.Width(width).Render(
		st.Title.Render(title) + "  " + st.Position.Render(counter) + "   " + help)
}
