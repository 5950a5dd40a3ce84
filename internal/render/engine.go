// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package render composites the carousel into an off-screen frame and hands
// it to a surface for display.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/janderssonse/themepicker/internal/carousel"
)

// Surface is the visible target of a frame.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (int, int)
	// Present copies the finished frame to the visible surface. The frame is
	// not retained by the engine after the call.
	Present(frame *image.RGBA)
}

// Engine draws carousel frames. It caches the dimming overlay and scaled
// thumbnails between frames.
type Engine struct {
	layout     Layout
	background color.Color

	overlay    *image.RGBA
	thumbs     map[string]*image.NRGBA
	cachedSize image.Point

	overlayBuilds int
}

// NewEngine returns an Engine for the given layout and background color.
func NewEngine(layout Layout, background color.Color) *Engine {
	if background == nil {
		background = color.Black
	}

	return &Engine{
		layout:     layout,
		background: background,
		thumbs:     make(map[string]*image.NRGBA),
	}
}

// Layout returns the current layout.
func (e *Engine) Layout() Layout {
	return e.layout
}

// SetLayout replaces the layout. Cached bitmaps are dropped on the next
// render if the thumbnail size changed.
func (e *Engine) SetLayout(layout Layout) {
	e.layout = layout
}

// Render composites the full strip for state and presents it on surface.
func (e *Engine) Render(state *carousel.State, surface Surface) {
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return
	}

	e.syncCaches()

	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(e.background), image.Point{}, draw.Src)

	canvas, ok := frame.SubImage(frame.Bounds()).(*image.RGBA)
	if !ok {
		return
	}

	thumbW, thumbH := e.layout.ThumbWidth, e.layout.ThumbHeight
	x := e.layout.Margin - state.ScrollOffset()
	y := height/2 - thumbH/2

	entries := state.Entries()
	for i, entry := range entries {
		if entry.Image != nil {
			rect := image.Rect(x, y, x+thumbW, y+thumbH)

			e.drawBorder(canvas, rect)
			draw.Draw(canvas, rect, e.thumbnail(entry.Name, entry.Image), image.Point{}, draw.Over)

			if i != state.Selected() {
				draw.Draw(canvas, rect, e.overlay, image.Point{}, draw.Over)
			}
		}

		if i == len(entries)-1 {
			x += thumbW + e.layout.TrailingGap
		} else {
			x += thumbW + e.layout.Gap
		}
	}

	surface.Present(frame)
}

func (e *Engine) drawBorder(dst draw.Image, thumb image.Rectangle) {
	b := e.layout.Border
	if b <= 0 {
		return
	}

	outer := thumb.Inset(-b)
	bg := image.NewUniform(e.background)

	for _, strip := range []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, thumb.Min.Y),
		image.Rect(outer.Min.X, thumb.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, thumb.Min.Y, thumb.Min.X, thumb.Max.Y),
		image.Rect(thumb.Max.X, thumb.Min.Y, outer.Max.X, thumb.Max.Y),
	} {
		draw.Draw(dst, strip, bg, image.Point{}, draw.Src)
	}
}

// syncCaches drops the overlay and scaled thumbnails when the thumbnail size
// no longer matches the one they were built for.
func (e *Engine) syncCaches() {
	size := image.Pt(e.layout.ThumbWidth, e.layout.ThumbHeight)
	if e.overlay != nil && e.cachedSize == size {
		return
	}

	e.overlay = image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(e.overlay, e.overlay.Bounds(),
		image.NewUniform(color.RGBA{A: e.layout.DimAlpha}), image.Point{}, draw.Src)

	e.thumbs = make(map[string]*image.NRGBA)
	e.cachedSize = size
	e.overlayBuilds++
}

func (e *Engine) thumbnail(name string, src image.Image) *image.NRGBA {
	if thumb, ok := e.thumbs[name]; ok {
		return thumb
	}

	thumb := imaging.Resize(src, e.layout.ThumbWidth, e.layout.ThumbHeight, imaging.Linear)
	e.thumbs[name] = thumb

	return thumb
}
