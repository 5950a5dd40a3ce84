// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package wallpaper

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/janderssonse/themepicker/internal/platform"
)

// BaseName is the wallpaper file name inside a theme directory.
const BaseName = "wallpaper"

// Strategy names accepted in configuration.
const (
	StrategyContent   = "content"
	StrategyExtension = "extension"
)

// ErrUnknownStrategy is returned for an unrecognised strategy name.
var ErrUnknownStrategy = errors.New("unknown decode strategy")

// Loader loads the wallpaper of a single theme directory.
type Loader interface {
	Load(themeDir string) (image.Image, error)
}

// ContentProbe loads <themeDir>/wallpaper and identifies the format by content.
type ContentProbe struct {
	decoder *Decoder
}

// NewContentProbe creates the extension-agnostic loader.
func NewContentProbe(decoder *Decoder) *ContentProbe {
	return &ContentProbe{decoder: decoder}
}

// Load implements Loader.
func (p *ContentProbe) Load(themeDir string) (image.Image, error) {
	return p.decoder.DecodeFile(filepath.Join(themeDir, BaseName))
}

type candidate struct {
	suffix string
	codec  Codec
}

// ExtensionProbe looks for wallpaper.jpg then wallpaper.png and decodes each
// with the codec its suffix names. The first existing candidate decides.
type ExtensionProbe struct {
	candidates []candidate
}

// NewExtensionProbe creates the extension-aware loader.
func NewExtensionProbe() *ExtensionProbe {
	return &ExtensionProbe{
		candidates: []candidate{
			{suffix: ".jpg", codec: JPEG},
			{suffix: ".png", codec: PNG},
		},
	}
}

// Load implements Loader.
func (p *ExtensionProbe) Load(themeDir string) (image.Image, error) {
	for _, c := range p.candidates {
		path := filepath.Join(themeDir, BaseName+c.suffix)
		if !platform.FileExists(path) {
			continue
		}

		return NewDecoder(c.codec).DecodeFile(path)
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrWallpaperMissing,
		filepath.Join(themeDir, BaseName+".{jpg,png}"))
}

// NewLoader returns the loader registered under name.
func NewLoader(name string) (Loader, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyContent:
		return NewContentProbe(NewDecoder()), nil
	case StrategyExtension:
		return NewExtensionProbe(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
