// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// cellSurface renders frames as rows of half-block cells: the foreground
// paints the upper pixel and the background the lower one.
type cellSurface struct {
	width  int
	height int
	lines  []string
}

func (s *cellSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *cellSurface) Present(frame *image.RGBA) {
	rows := (s.height + 1) / 2
	lines := make([]string, 0, rows)

	for row := range rows {
		lines = append(lines, cellRow(frame, row*2, s.width))
	}

	s.lines = lines
}

func (s *cellSurface) String() string {
	return strings.Join(s.lines, "\n")
}

// cellRow renders pixel rows y and y+1, styling runs of identical cells once.
func cellRow(frame *image.RGBA, y, width int) string {
	var (
		b         strings.Builder
		runTop    string
		runBottom string
		runLen    int
	)

	flush := func() {
		if runLen == 0 {
			return
		}

		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(runTop)).
			Background(lipgloss.Color(runBottom)).
			Render(strings.Repeat(halfBlock, runLen)))
	}

	for x := range width {
		top := hex(frame, x, y)
		bottom := top

		if y+1 < frame.Bounds().Dy() {
			bottom = hex(frame, x, y+1)
		}

		if runLen > 0 && top == runTop && bottom == runBottom {
			runLen++
			continue
		}

		flush()

		runTop, runBottom, runLen = top, bottom, 1
	}

	flush()

	return b.String()
}

func hex(frame *image.RGBA, x, y int) string {
	c := frame.RGBAAt(x, y)

	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
