// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathUtils_GetXDGConfigHome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		want     string
	}{
		{
			name:     "uses XDG_CONFIG_HOME when set",
			envValue: "/custom/config",
			want:     "/custom/config",
		},
		{
			name:     "falls back to ~/.config when not set",
			envValue: "",
			want:     "", // Will be set dynamically
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := GetXDGConfigHomeWithEnv(testCase.envValue)

			if testCase.want == "" {
				home, err := os.UserHomeDir()
				require.NoError(t, err)

				require.Equal(t, filepath.Join(home, ".config"), got)
			} else {
				require.Equal(t, testCase.want, got)
			}
		})
	}
}

func TestPathUtils_ExpandPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "expands tilde path",
			path: "~/.config/themes",
			want: filepath.Join(home, ".config/themes"),
		},
		{
			name: "expands XDG_CONFIG_HOME",
			path: "$XDG_CONFIG_HOME/themes",
			want: "/xdg/themes",
		},
		{
			name: "leaves absolute path unchanged",
			path: "/absolute/path/test",
			want: "/absolute/path/test",
		},
		{
			name: "leaves relative path unchanged",
			path: "relative/path/test",
			want: "relative/path/test",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := ExpandPathWithEnv(testCase.path, "/xdg")
			require.Equal(t, testCase.want, got)
		})
	}
}

func TestFileUtils_IsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "wallpaper")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	require.True(t, IsDir(dir))
	require.False(t, IsDir(file))
	require.False(t, IsDir(filepath.Join(dir, "missing")))

	require.True(t, FileExists(file))
	require.False(t, FileExists(filepath.Join(dir, "missing")))
}
