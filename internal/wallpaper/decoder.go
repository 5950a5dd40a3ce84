// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package wallpaper decodes theme wallpapers by probing their content.
package wallpaper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"

	"github.com/janderssonse/themepicker/internal/domain"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Codec decodes one image format.
type Codec struct {
	Name   string
	Decode func(r io.Reader) (image.Image, error)
}

// Built-in codecs, in probe priority order.
var (
	JPEG = Codec{Name: "jpeg", Decode: jpeg.Decode} //nolint:gochecknoglobals
	PNG  = Codec{Name: "png", Decode: png.Decode}   //nolint:gochecknoglobals
	WebP = Codec{Name: "webp", Decode: webp.Decode} //nolint:gochecknoglobals
	BMP  = Codec{Name: "bmp", Decode: bmp.Decode}   //nolint:gochecknoglobals
)

// DefaultCodecs returns the probe order used when none is configured.
func DefaultCodecs() []Codec {
	return []Codec{JPEG, PNG, WebP, BMP}
}

// Decoder tries a fixed list of codecs against the same bytes.
type Decoder struct {
	codecs []Codec
}

// NewDecoder creates a decoder probing codecs in the given order.
func NewDecoder(codecs ...Codec) *Decoder {
	if len(codecs) == 0 {
		codecs = DefaultCodecs()
	}

	return &Decoder{codecs: codecs}
}

// Codecs returns the probe order.
func (d *Decoder) Codecs() []Codec {
	return d.codecs
}

// DecodeFile reads path once and decodes it with the first codec that yields
// a non-empty bitmap. The file extension is never consulted.
func (d *Decoder) DecodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrWallpaperMissing, path)
		}

		return nil, fmt.Errorf("failed to read wallpaper %s: %w", path, err)
	}

	img, err := d.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	return img, nil
}

// Decode probes data with each codec in order.
func (d *Decoder) Decode(data []byte) (image.Image, error) {
	for _, codec := range d.codecs {
		if img, ok := attempt(codec, data); ok {
			return img, nil
		}
	}

	return nil, domain.ErrDecodeFailure
}

// attempt runs one codec over its own reader so a failed attempt leaves
// nothing behind for the next one.
func attempt(codec Codec, data []byte) (image.Image, bool) {
	img, err := codec.Decode(bytes.NewReader(data))
	if err != nil || img == nil {
		return nil, false
	}

	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, false
	}

	return img, true
}
