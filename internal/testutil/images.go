// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides mocks and fixtures shared by package tests.
package testutil

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SolidImage returns a w x h image filled with c.
func SolidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}

	return img
}

// WritePNG encodes a solid w x h PNG at path, creating parent directories.
func WritePNG(t testing.TB, path string, w, h int, c color.Color) {
	t.Helper()

	f := create(t, path)
	defer func() { require.NoError(t, f.Close()) }()

	require.NoError(t, png.Encode(f, SolidImage(w, h, c)))
}

// WriteJPEG encodes a solid w x h JPEG at path, creating parent directories.
func WriteJPEG(t testing.TB, path string, w, h int, c color.Color) {
	t.Helper()

	f := create(t, path)
	defer func() { require.NoError(t, f.Close()) }()

	require.NoError(t, jpeg.Encode(f, SolidImage(w, h, c), &jpeg.Options{Quality: 90}))
}

// WriteFile writes raw bytes at path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, data, 0600))
}

func create(t testing.TB, path string) *os.File {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))

	f, err := os.Create(path) //nolint:gosec
	require.NoError(t, err)

	return f
}
