// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import "github.com/janderssonse/themepicker/internal/render"

// Terminal strip spacing in half-block pixels.
const (
	footerRows   = 2
	cellGap      = 2
	cellMargin   = 2
	cellBorder   = 1
	cellPadding  = 1
	minThumbSide = 2
)

// LayoutFor fits the strip into a cols x rows terminal. One column is one
// pixel wide and one row is two pixels tall. The thumbnail keeps the aspect
// of base.
func LayoutFor(base render.Layout, cols, rows int) render.Layout {
	pixelHeight := PixelHeight(rows)

	thumbH := max(pixelHeight-2*(cellBorder+cellPadding), minThumbSide)
	thumbW := thumbH * base.ThumbWidth / base.ThumbHeight

	if maxW := cols - 2*cellMargin; thumbW > maxW {
		thumbW = max(maxW, minThumbSide)
		thumbH = max(thumbW*base.ThumbHeight/base.ThumbWidth, minThumbSide)
	}

	return render.Layout{
		ThumbWidth:  thumbW,
		ThumbHeight: thumbH,
		Gap:         cellGap,
		Margin:      cellMargin,
		TrailingGap: cellMargin,
		Border:      cellBorder,
		DimAlpha:    base.DimAlpha,
	}
}

// PixelHeight returns the strip height in pixels for a terminal of rows rows.
func PixelHeight(rows int) int {
	return max(rows-footerRows, 1) * 2
}
