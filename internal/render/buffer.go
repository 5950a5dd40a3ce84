// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package render

import "image"

// Buffer is an in-memory Surface. It keeps a copy of the last presented frame.
type Buffer struct {
	Width  int
	Height int

	frame    *image.RGBA
	presents int
}

// NewBuffer returns a Buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height}
}

// Size implements Surface.
func (b *Buffer) Size() (int, int) {
	return b.Width, b.Height
}

// Present implements Surface.
func (b *Buffer) Present(frame *image.RGBA) {
	if b.frame == nil || b.frame.Bounds() != frame.Bounds() {
		b.frame = image.NewRGBA(frame.Bounds())
	}

	copy(b.frame.Pix, frame.Pix)
	b.presents++
}

// Frame returns the last presented frame, or nil.
func (b *Buffer) Frame() *image.RGBA {
	return b.frame
}

// Presents returns how many frames were presented.
func (b *Buffer) Presents() int {
	return b.presents
}
