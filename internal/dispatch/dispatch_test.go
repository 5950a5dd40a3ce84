// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/janderssonse/themepicker/internal/console"
	"github.com/janderssonse/themepicker/internal/dispatch"
	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/janderssonse/themepicker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCommandApplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr error
	}{
		{name: "default", line: dispatch.DefaultCommand, want: []string{"set-theme"}},
		{name: "with args", line: "themectl apply --quiet", want: []string{"themectl", "apply", "--quiet"}},
		{name: "quoted", line: `"/opt/my tools/set-theme" -v`, want: []string{"/opt/my tools/set-theme", "-v"}},
		{name: "empty", line: "", wantErr: domain.ErrEmptyCommand},
		{name: "blank", line: "   ", wantErr: domain.ErrEmptyCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			applier, err := dispatch.NewCommandApplier(tt.line, &testutil.MockCommandRunner{}, nil, dispatch.Launch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, applier.Command())
		})
	}
}

func TestApplyLaunchesWithThemeName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	runner := &testutil.MockCommandRunner{}
	runner.On("Start", ctx, "set-theme", "nord").Return(nil)

	var out bytes.Buffer
	applier, err := dispatch.NewCommandApplier("set-theme", runner, console.NewBuffered(&out, &bytes.Buffer{}), dispatch.Launch)
	require.NoError(t, err)

	require.NoError(t, applier.Apply(ctx, domain.ThemeEntry{Name: "nord"}))
	runner.AssertExpectations(t)
	runner.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	assert.Contains(t, out.String(), "Executing: set-theme nord")
}

func TestApplyPassesNameAsSingleArgument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	name := `tokyo night; rm -rf "$HOME"`
	runner := &testutil.MockCommandRunner{}
	runner.On("Start", ctx, "themectl", "apply", name).Return(nil)

	applier, err := dispatch.NewCommandApplier("themectl apply", runner, console.NewBuffered(&bytes.Buffer{}, &bytes.Buffer{}), dispatch.Launch)
	require.NoError(t, err)

	require.NoError(t, applier.Apply(ctx, domain.ThemeEntry{Name: name}))
	runner.AssertExpectations(t)
}

func TestApplyWaitModeUsesExecute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	failure := errors.New("exit status 1")
	runner := &testutil.MockCommandRunner{}
	runner.On("Execute", ctx, "set-theme", "gruvbox").Return(failure)

	applier, err := dispatch.NewCommandApplier("set-theme", runner, console.NewBuffered(&bytes.Buffer{}, &bytes.Buffer{}), dispatch.Wait)
	require.NoError(t, err)

	err = applier.Apply(ctx, domain.ThemeEntry{Name: "gruvbox"})
	require.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "gruvbox")
	runner.AssertExpectations(t)
}

func TestApplyRejectsEmptyName(t *testing.T) {
	t.Parallel()

	runner := &testutil.MockCommandRunner{}
	applier, err := dispatch.NewCommandApplier("set-theme", runner, console.NewBuffered(&bytes.Buffer{}, &bytes.Buffer{}), dispatch.Launch)
	require.NoError(t, err)

	require.ErrorIs(t, applier.Apply(context.Background(), domain.ThemeEntry{}), domain.ErrThemeNotFound)
	assert.Empty(t, runner.Calls)
}
