// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "image"

// ThemeEntry is one selectable theme: its directory name and decoded wallpaper.
// Entries are built by the scanner and never mutated afterwards.
type ThemeEntry struct {
	Name  string
	Image image.Image
}

// Valid reports whether the entry can be shown in the carousel.
func (e ThemeEntry) Valid() bool {
	if e.Name == "" || e.Image == nil {
		return false
	}

	size := e.Image.Bounds().Size()

	return size.X > 0 && size.Y > 0
}
