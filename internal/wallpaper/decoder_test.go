// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package wallpaper_test

import (
	"errors"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/janderssonse/themepicker/internal/testutil"
	"github.com/janderssonse/themepicker/internal/wallpaper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teal = color.RGBA{R: 0, G: 128, B: 128, A: 255}

func TestDecodeFile_ProbesByContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name  string
		file  string
		write func(path string)
	}{
		{
			name:  "png without extension",
			file:  filepath.Join(dir, "a", "wallpaper"),
			write: func(path string) { testutil.WritePNG(t, path, 32, 18, teal) },
		},
		{
			name:  "jpeg without extension",
			file:  filepath.Join(dir, "b", "wallpaper"),
			write: func(path string) { testutil.WriteJPEG(t, path, 32, 18, teal) },
		},
		{
			name:  "png behind a misleading jpg suffix",
			file:  filepath.Join(dir, "c", "wallpaper.jpg"),
			write: func(path string) { testutil.WritePNG(t, path, 32, 18, teal) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.write(tc.file)

			img, err := wallpaper.NewDecoder().DecodeFile(tc.file)
			require.NoError(t, err)
			assert.Equal(t, image.Pt(32, 18), img.Bounds().Size())
		})
	}
}

func TestDecodeFile_UnrecognisedHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wallpaper")
	testutil.WriteFile(t, path, []byte("this is not an image at all"))

	img, err := wallpaper.NewDecoder().DecodeFile(path)
	require.Error(t, err)
	assert.Nil(t, img)
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
	assert.Contains(t, err.Error(), path)
}

func TestDecodeFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := wallpaper.NewDecoder().DecodeFile(filepath.Join(t.TempDir(), "wallpaper"))
	assert.ErrorIs(t, err, domain.ErrWallpaperMissing)
}

func TestDecode_ProbeOrderAndZeroWidth(t *testing.T) {
	t.Parallel()

	var calls []string

	record := func(name string, img image.Image, err error) wallpaper.Codec {
		return wallpaper.Codec{
			Name: name,
			Decode: func(io.Reader) (image.Image, error) {
				calls = append(calls, name)
				return img, err
			},
		}
	}

	decoder := wallpaper.NewDecoder(
		record("broken", nil, errors.New("bad header")),
		record("empty", image.NewRGBA(image.Rect(0, 0, 0, 10)), nil),
		record("good", image.NewRGBA(image.Rect(0, 0, 8, 4)), nil),
		record("never", image.NewRGBA(image.Rect(0, 0, 1, 1)), nil),
	)

	img, err := decoder.Decode([]byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, []string{"broken", "empty", "good"}, calls, "stops at first non-empty bitmap")
}

func TestDecode_EveryCodecFails(t *testing.T) {
	t.Parallel()

	decoder := wallpaper.NewDecoder()
	require.Len(t, decoder.Codecs(), 4)

	_, err := decoder.Decode([]byte{0x00, 0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
}
