// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package window hosts the picker in an undecorated desktop window.
package window

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/janderssonse/themepicker/internal/config"
	"github.com/janderssonse/themepicker/internal/picker"
	"github.com/janderssonse/themepicker/internal/render"
)

// Fallback monitor size when no monitor can be queried.
const (
	fallbackMonitorWidth  = 1920
	fallbackMonitorHeight = 1080
)

var keyMap = []struct { //nolint:gochecknoglobals
	key  ebiten.Key
	pick picker.Key
}{
	{ebiten.KeyArrowLeft, picker.KeyLeft},
	{ebiten.KeyArrowRight, picker.KeyRight},
	{ebiten.KeyEnter, picker.KeyConfirm},
	{ebiten.KeyNumpadEnter, picker.KeyConfirm},
}

// canvas is the render surface backed by an ebiten image.
type canvas struct {
	image  *ebiten.Image
	width  int
	height int
}

func (c *canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *canvas) Present(frame *image.RGBA) {
	c.image.WritePixels(frame.Pix)
}

// Game implements ebiten.Game around a picker controller.
type Game struct {
	ctx        context.Context //nolint:containedctx // ebiten owns the loop
	controller *picker.Controller
	engine     *render.Engine
	canvas     *canvas
	dirty      bool
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	for _, m := range keyMap {
		if !inpututil.IsKeyJustPressed(m.key) {
			continue
		}

		switch g.controller.HandleKey(g.ctx, m.pick) {
		case picker.Done:
			return ebiten.Termination
		case picker.Redraw:
			g.dirty = true
		case picker.Ignored:
		}
	}

	if g.dirty {
		g.engine.Render(g.controller.State(), g.canvas)
		g.dirty = false
	}

	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.image, nil)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.canvas.width, g.canvas.height
}

// Run opens the window and blocks until a theme is picked or the window is closed.
// The controller's carousel viewport is resized to the window width.
func Run(ctx context.Context, controller *picker.Controller, engine *render.Engine, win config.Window) error {
	monitorW, monitorH := fallbackMonitorWidth, fallbackMonitorHeight
	if m := ebiten.Monitor(); m != nil {
		monitorW, monitorH = m.Size()
	}

	bounds := win.Bounds(monitorW, monitorH)

	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(bounds.Dx(), bounds.Dy())
	ebiten.SetWindowPosition(bounds.Min.X, bounds.Min.Y)

	controller.State().SetViewportWidth(bounds.Dx())

	game := &Game{
		ctx:        ctx,
		controller: controller,
		engine:     engine,
		canvas: &canvas{
			image:  ebiten.NewImage(bounds.Dx(), bounds.Dy()),
			width:  bounds.Dx(),
			height: bounds.Dy(),
		},
		dirty: true,
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}

	return nil
}
