// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads the picker configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/janderssonse/themepicker/internal/dispatch"
	"github.com/janderssonse/themepicker/internal/platform"
	"github.com/janderssonse/themepicker/internal/render"
	"github.com/janderssonse/themepicker/internal/wallpaper"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Window defaults in pixels.
const (
	DefaultTitle        = "Theme Picker"
	DefaultWindowHeight = 300
	DefaultSideMargin   = 15
	DefaultBottomMargin = 25
	DefaultBackground   = "#000000"
)

// Layout is the [layout] table.
type Layout struct {
	ThumbWidth  int `toml:"thumb_width"`
	ThumbHeight int `toml:"thumb_height"`
	Gap         int `toml:"gap"`
	Margin      int `toml:"margin"`
	TrailingGap int `toml:"trailing_gap"`
	Border      int `toml:"border"`
	DimAlpha    int `toml:"dim_alpha"`
}

// Window is the [window] table.
type Window struct {
	Title        string `toml:"title"`
	Height       int    `toml:"height"`
	SideMargin   int    `toml:"side_margin"`
	BottomMargin int    `toml:"bottom_margin"`
}

// Config represents config.toml.
type Config struct {
	ThemesDir    string `toml:"themes_dir"`
	ApplyCommand string `toml:"apply_command"`
	Decode       string `toml:"decode"`
	Background   string `toml:"background"`
	Layout       Layout `toml:"layout"`
	Window       Window `toml:"window"`
}

// Overrides holds command line values that replace file values when set.
type Overrides struct {
	ThemesDir    string
	ApplyCommand string
	Decode       string
}

// Default returns the built-in configuration.
func Default() Config {
	layout := render.DefaultLayout()

	return Config{
		ThemesDir:    platform.GetThemesDir(),
		ApplyCommand: dispatch.DefaultCommand,
		Decode:       wallpaper.StrategyContent,
		Background:   DefaultBackground,
		Layout: Layout{
			ThumbWidth:  layout.ThumbWidth,
			ThumbHeight: layout.ThumbHeight,
			Gap:         layout.Gap,
			Margin:      layout.Margin,
			TrailingGap: layout.TrailingGap,
			Border:      layout.Border,
			DimAlpha:    int(layout.DimAlpha),
		},
		Window: Window{
			Title:        DefaultTitle,
			Height:       DefaultWindowHeight,
			SideMargin:   DefaultSideMargin,
			BottomMargin: DefaultBottomMargin,
		},
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, path, err)
	}

	cfg.ThemesDir = platform.ExpandPath(cfg.ThemesDir)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Apply replaces file values with the non-empty overrides and re-validates.
func (c *Config) Apply(o Overrides) error {
	if o.ThemesDir != "" {
		c.ThemesDir = platform.ExpandPath(o.ThemesDir)
	}

	if o.ApplyCommand != "" {
		c.ApplyCommand = o.ApplyCommand
	}

	if o.Decode != "" {
		c.Decode = o.Decode
	}

	return c.Validate()
}

// Validate checks every value, wrapping failures in ErrInvalidConfig.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ThemesDir) == "" {
		return fmt.Errorf("%w: themes_dir is empty", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.ApplyCommand) == "" {
		return fmt.Errorf("%w: apply_command is empty", ErrInvalidConfig)
	}

	if _, err := wallpaper.NewLoader(c.Decode); err != nil {
		return fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}

	if _, err := c.BackgroundColor(); err != nil {
		return err
	}

	if c.Layout.DimAlpha < 0 || c.Layout.DimAlpha > 255 {
		return fmt.Errorf("%w: dim_alpha must be within 0..255, got %d", ErrInvalidConfig, c.Layout.DimAlpha)
	}

	if err := c.RenderLayout().Validate(); err != nil {
		return fmt.Errorf("%w: layout: %w", ErrInvalidConfig, err)
	}

	if c.Window.Height <= 0 || c.Window.SideMargin < 0 || c.Window.BottomMargin < 0 {
		return fmt.Errorf("%w: window height must be positive and margins not negative", ErrInvalidConfig)
	}

	return nil
}

// BackgroundColor parses the background hex value.
func (c Config) BackgroundColor() (color.RGBA, error) {
	parsed, err := colorful.Hex(c.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: background %q: %w", ErrInvalidConfig, c.Background, err)
	}

	r, g, b := parsed.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// RenderLayout converts the [layout] table for the render engine.
func (c Config) RenderLayout() render.Layout {
	return render.Layout{
		ThumbWidth:  c.Layout.ThumbWidth,
		ThumbHeight: c.Layout.ThumbHeight,
		Gap:         c.Layout.Gap,
		Margin:      c.Layout.Margin,
		TrailingGap: c.Layout.TrailingGap,
		Border:      c.Layout.Border,
		DimAlpha:    uint8(min(max(c.Layout.DimAlpha, 0), 255)), //nolint:gosec // clamped
	}
}

// Loader returns the wallpaper loader selected by decode.
func (c Config) Loader() (wallpaper.Loader, error) {
	loader, err := wallpaper.NewLoader(c.Decode)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}

	return loader, nil
}

// Bounds places the window strip at the bottom of a monitor of the given size.
func (w Window) Bounds(monitorWidth, monitorHeight int) image.Rectangle {
	x := w.SideMargin
	y := monitorHeight - w.Height - w.BottomMargin

	return image.Rect(x, y, x+max(monitorWidth-2*w.SideMargin, 1), y+w.Height)
}
