// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package carousel holds the selection and scroll state of the thumbnail strip.
package carousel

import "github.com/janderssonse/themepicker/internal/domain"

// Geometry describes the horizontal layout the scroll policy works against.
type Geometry struct {
	ThumbWidth    int
	Gap           int
	Margin        int
	ViewportWidth int
}

// State is the carousel: an ordered, read-only entry list plus the selected
// index and horizontal scroll offset. It is owned by a single event loop.
type State struct {
	entries  []domain.ThemeEntry
	selected int
	scroll   int
	geometry Geometry
}

// New creates a State selecting the first entry, or nothing when entries is empty.
func New(entries []domain.ThemeEntry, geometry Geometry) *State {
	s := &State{
		entries:  entries,
		selected: -1,
		geometry: geometry,
	}

	if len(entries) > 0 {
		s.selected = 0
		s.keepVisible()
	}

	return s
}

// Entries returns the entry list. Callers must not modify it.
func (s *State) Entries() []domain.ThemeEntry {
	return s.entries
}

// Len returns the number of entries.
func (s *State) Len() int {
	return len(s.entries)
}

// Selected returns the selected index, or -1 when there are no entries.
func (s *State) Selected() int {
	return s.selected
}

// ScrollOffset returns the horizontal pixel shift applied to the strip.
func (s *State) ScrollOffset() int {
	return s.scroll
}

// Geometry returns the layout the scroll offset is computed against.
func (s *State) Geometry() Geometry {
	return s.geometry
}

// MoveLeft selects the previous entry. It reports whether the index changed.
func (s *State) MoveLeft() bool {
	if s.selected <= 0 {
		return false
	}

	s.selected--
	s.keepVisible()

	return true
}

// MoveRight selects the next entry. It reports whether the index changed.
func (s *State) MoveRight() bool {
	if s.selected < 0 || s.selected >= len(s.entries)-1 {
		return false
	}

	s.selected++
	s.keepVisible()

	return true
}

// Confirm returns the selected entry. It never changes the state.
func (s *State) Confirm() (domain.ThemeEntry, bool) {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return domain.ThemeEntry{}, false
	}

	return s.entries[s.selected], true
}

// SetViewportWidth updates the visible width and re-applies the scroll policy.
func (s *State) SetViewportWidth(width int) {
	s.geometry.ViewportWidth = width
	if s.selected >= 0 {
		s.keepVisible()
	}
}

// SetGeometry replaces the layout and re-applies the scroll policy.
func (s *State) SetGeometry(geometry Geometry) {
	s.geometry = geometry
	if s.selected >= 0 {
		s.keepVisible()
	}
}

// Extent returns the strip coordinates of the selected thumbnail's left and
// right edges.
func (s *State) Extent() (int, int) {
	left := s.geometry.Margin + s.selected*(s.geometry.ThumbWidth+s.geometry.Gap)

	return left, left + s.geometry.ThumbWidth
}

// keepVisible scrolls just enough to reveal the selected thumbnail and does
// nothing when it is already fully visible. A zero viewport width means the
// host has not measured its surface yet.
func (s *State) keepVisible() {
	if s.geometry.ViewportWidth <= 0 {
		return
	}

	left, right := s.Extent()

	switch {
	case left-s.scroll < 0:
		s.scroll = left
	case right-s.scroll > s.geometry.ViewportWidth:
		s.scroll = right - s.geometry.ViewportWidth
	}
}
