// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/janderssonse/themepicker/internal/carousel"
	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/janderssonse/themepicker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bg    = color.RGBA{R: 10, G: 20, B: 30, A: 255}
)

func smallLayout() Layout {
	return Layout{
		ThumbWidth:  10,
		ThumbHeight: 6,
		Gap:         2,
		Margin:      2,
		TrailingGap: 2,
		Border:      1,
		DimAlpha:    DefaultDimAlpha,
	}
}

func whiteEntries(names ...string) []domain.ThemeEntry {
	out := make([]domain.ThemeEntry, 0, len(names))
	for _, n := range names {
		out = append(out, domain.ThemeEntry{Name: n, Image: testutil.SolidImage(4, 2, white)})
	}

	return out
}

func render(t *testing.T, e *Engine, state *carousel.State, w, h int) *image.RGBA {
	t.Helper()

	buf := NewBuffer(w, h)
	e.Render(state, buf)
	require.Equal(t, 1, buf.Presents())

	return buf.Frame()
}

func TestRenderEmptyListPresentsBackground(t *testing.T) {
	t.Parallel()

	e := NewEngine(smallLayout(), bg)
	frame := render(t, e, carousel.New(nil, smallLayout().Geometry(40)), 40, 10)

	for y := range 10 {
		for x := range 40 {
			require.Equal(t, bg, frame.RGBAAt(x, y))
		}
	}
}

func TestRenderZeroSizeSurfaceIsNoOp(t *testing.T) {
	t.Parallel()

	e := NewEngine(smallLayout(), bg)
	state := carousel.New(whiteEntries("a"), smallLayout().Geometry(0))

	for _, size := range []image.Point{{0, 10}, {10, 0}, {0, 0}} {
		buf := NewBuffer(size.X, size.Y)
		e.Render(state, buf)
		assert.Equal(t, 0, buf.Presents())
		assert.Nil(t, buf.Frame())
	}
}

func TestRenderDimsOnlyUnselected(t *testing.T) {
	t.Parallel()

	e := NewEngine(smallLayout(), bg)
	state := carousel.New(whiteEntries("a", "b"), smallLayout().Geometry(40))
	frame := render(t, e, state, 40, 10)

	selected := frame.RGBAAt(7, 5)
	assert.InDelta(t, 255, selected.R, 1)
	assert.InDelta(t, 255, selected.G, 1)

	dimmed := frame.RGBAAt(19, 5)
	assert.InDelta(t, 135, dimmed.R, 2)
	assert.Equal(t, uint8(255), dimmed.A)

	// margin, gap and trailing area stay background
	assert.Equal(t, bg, frame.RGBAAt(0, 5))
	assert.Equal(t, bg, frame.RGBAAt(13, 5))
	assert.Equal(t, bg, frame.RGBAAt(30, 5))
	assert.Equal(t, bg, frame.RGBAAt(7, 0))
}

func TestRenderFollowsSelection(t *testing.T) {
	t.Parallel()

	e := NewEngine(smallLayout(), bg)
	state := carousel.New(whiteEntries("a", "b"), smallLayout().Geometry(40))
	state.MoveRight()
	frame := render(t, e, state, 40, 10)

	assert.InDelta(t, 135, frame.RGBAAt(7, 5).R, 2)
	assert.InDelta(t, 255, frame.RGBAAt(19, 5).R, 1)
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	e := NewEngine(smallLayout(), bg)
	state := carousel.New(whiteEntries("a", "b", "c", "d"), smallLayout().Geometry(30))
	state.MoveRight()
	state.MoveRight()

	first := render(t, e, state, 30, 10)
	second := render(t, e, state, 30, 10)
	assert.Equal(t, first.Pix, second.Pix)

	fresh := render(t, NewEngine(smallLayout(), bg), state, 30, 10)
	assert.Equal(t, first.Pix, fresh.Pix, "cached thumbnails match freshly scaled ones")
}

func TestRenderSkipsNilImageButAdvances(t *testing.T) {
	t.Parallel()

	entries := []domain.ThemeEntry{
		{Name: "broken"},
		{Name: "ok", Image: testutil.SolidImage(4, 2, white)},
	}

	e := NewEngine(smallLayout(), bg)
	frame := render(t, e, carousel.New(entries, smallLayout().Geometry(40)), 40, 10)

	assert.Equal(t, bg, frame.RGBAAt(7, 5), "nil image leaves background")
	assert.InDelta(t, 135, frame.RGBAAt(19, 5).R, 2, "next entry keeps its slot")
}

func TestRenderAppliesScrollOffset(t *testing.T) {
	t.Parallel()

	layout := smallLayout()
	e := NewEngine(layout, bg)
	state := carousel.New(whiteEntries("a", "b", "c"), layout.Geometry(20))
	state.MoveRight()
	state.MoveRight()
	require.Equal(t, 16, state.ScrollOffset())

	frame := render(t, e, state, 20, 10)

	// selected thumb spans strip x 26..36, shown at 10..20
	assert.InDelta(t, 255, frame.RGBAAt(15, 5).R, 1)
	assert.Equal(t, bg, frame.RGBAAt(9, 5))
	assert.InDelta(t, 135, frame.RGBAAt(5, 5).R, 2)
}

func TestOverlayRebuiltOnlyOnSizeChange(t *testing.T) {
	t.Parallel()

	e := NewEngine(smallLayout(), bg)
	state := carousel.New(whiteEntries("a", "b"), smallLayout().Geometry(40))

	render(t, e, state, 40, 10)
	render(t, e, state, 40, 10)
	assert.Equal(t, 1, e.overlayBuilds)
	assert.Equal(t, image.Pt(10, 6), e.overlay.Bounds().Size())
	assert.Equal(t, color.RGBA{A: DefaultDimAlpha}, e.overlay.RGBAAt(0, 0))

	same := smallLayout()
	same.Gap = 3
	e.SetLayout(same)
	render(t, e, state, 40, 10)
	assert.Equal(t, 1, e.overlayBuilds, "gap change keeps the overlay")

	smaller := smallLayout()
	smaller.ThumbWidth, smaller.ThumbHeight = 8, 4
	e.SetLayout(smaller)
	render(t, e, state, 40, 10)
	assert.Equal(t, 2, e.overlayBuilds)
	assert.Equal(t, image.Pt(8, 4), e.overlay.Bounds().Size())
	assert.Equal(t, image.Pt(8, 4), e.thumbs["a"].Bounds().Size())
}

func TestNewEngineDefaultsBackground(t *testing.T) {
	t.Parallel()

	e := NewEngine(smallLayout(), nil)
	frame := render(t, e, carousel.New(nil, smallLayout().Geometry(4)), 4, 4)
	assert.Equal(t, color.RGBA{A: 255}, frame.RGBAAt(1, 1))
}

func TestLayout(t *testing.T) {
	t.Parallel()

	l := DefaultLayout()
	require.NoError(t, l.Validate())
	assert.Equal(t, 20+3*497+2*10+20, l.StripWidth(3))
	assert.Equal(t, 20, l.StripWidth(0))
	assert.Equal(t, carousel.Geometry{ThumbWidth: 497, Gap: 10, Margin: 20, ViewportWidth: 800}, l.Geometry(800))

	bad := l
	bad.ThumbWidth = 0
	require.Error(t, bad.Validate())

	bad = l
	bad.Gap = -1
	require.Error(t, bad.Validate())
}
