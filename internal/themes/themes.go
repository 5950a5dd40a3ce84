// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package themes discovers installed themes and loads their wallpapers.
package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/janderssonse/themepicker/internal/console"
	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/janderssonse/themepicker/internal/platform"
	"github.com/janderssonse/themepicker/internal/wallpaper"
)

// Scanner builds the theme list from a base directory holding one
// subdirectory per theme.
type Scanner struct {
	loader wallpaper.Loader
	out    *console.OutputState
}

// NewScanner creates a Scanner. A nil out falls back to console.DefaultOutput.
func NewScanner(loader wallpaper.Loader, out *console.OutputState) *Scanner {
	if out == nil {
		out = console.DefaultOutput
	}

	return &Scanner{loader: loader, out: out}
}

// Scan returns every theme under basePath whose wallpaper decodes, in
// directory listing order. Unreadable base directories and broken wallpapers
// are logged and skipped; Scan never fails.
func (s *Scanner) Scan(basePath string) []domain.ThemeEntry {
	dirEntries, err := os.ReadDir(basePath)
	if err != nil {
		s.out.Warningf("%v", fmt.Errorf("%w: %w", domain.ErrScanUnavailable, err))

		return []domain.ThemeEntry{}
	}

	entries := make([]domain.ThemeEntry, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if !dirEntry.IsDir() || name == "." || name == ".." {
			continue
		}

		img, err := s.loader.Load(filepath.Join(basePath, name))
		if err != nil {
			s.out.Warningf("Skipping theme %s: %v", name, err)

			continue
		}

		entry := domain.ThemeEntry{Name: name, Image: img}
		if !entry.Valid() {
			s.out.Warningf("Skipping theme %s: empty wallpaper", name)

			continue
		}

		size := img.Bounds().Size()
		s.out.Infof("Loaded wallpaper: %s %dx%d", name, size.X, size.Y)

		entries = append(entries, entry)
	}

	return entries
}

// Find returns the directory of the named theme without decoding anything.
func (s *Scanner) Find(basePath, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("%w: %q", domain.ErrThemeNotFound, name)
	}

	dir := filepath.Join(basePath, name)
	if !platform.IsDir(dir) {
		return "", fmt.Errorf("%w: %s", domain.ErrThemeNotFound, name)
	}

	return dir, nil
}
