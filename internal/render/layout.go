// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package render

import (
	"fmt"

	"github.com/janderssonse/themepicker/internal/carousel"
)

// Default strip layout in pixels.
const (
	DefaultThumbWidth  = 497
	DefaultThumbHeight = 260
	DefaultGap         = 10
	DefaultMargin      = 20
	DefaultTrailingGap = 20
	DefaultBorder      = 2
	DefaultDimAlpha    = 120
)

// Layout holds the pixel geometry of the thumbnail strip.
type Layout struct {
	ThumbWidth  int
	ThumbHeight int
	Gap         int
	Margin      int
	TrailingGap int
	Border      int
	DimAlpha    uint8
}

// DefaultLayout returns the desktop layout.
func DefaultLayout() Layout {
	return Layout{
		ThumbWidth:  DefaultThumbWidth,
		ThumbHeight: DefaultThumbHeight,
		Gap:         DefaultGap,
		Margin:      DefaultMargin,
		TrailingGap: DefaultTrailingGap,
		Border:      DefaultBorder,
		DimAlpha:    DefaultDimAlpha,
	}
}

// Validate reports the first out-of-range field.
func (l Layout) Validate() error {
	switch {
	case l.ThumbWidth <= 0:
		return fmt.Errorf("thumb width must be positive, got %d", l.ThumbWidth)
	case l.ThumbHeight <= 0:
		return fmt.Errorf("thumb height must be positive, got %d", l.ThumbHeight)
	case l.Gap < 0, l.Margin < 0, l.TrailingGap < 0, l.Border < 0:
		return fmt.Errorf("gap, margin, trailing gap and border must not be negative")
	}

	return nil
}

// Geometry returns the carousel geometry for a viewport of the given width.
func (l Layout) Geometry(viewportWidth int) carousel.Geometry {
	return carousel.Geometry{
		ThumbWidth:    l.ThumbWidth,
		Gap:           l.Gap,
		Margin:        l.Margin,
		ViewportWidth: viewportWidth,
	}
}

// StripWidth returns the full strip width for n thumbnails, trailing gap included.
func (l Layout) StripWidth(n int) int {
	if n <= 0 {
		return l.Margin
	}

	return l.Margin + n*l.ThumbWidth + (n-1)*l.Gap + l.TrailingGap
}
