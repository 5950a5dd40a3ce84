// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package dispatch runs the external command that applies a picked theme.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/janderssonse/themepicker/internal/console"
	"github.com/janderssonse/themepicker/internal/domain"
)

// DefaultCommand is the apply command used when none is configured.
const DefaultCommand = "set-theme"

// Applier applies a theme.
type Applier interface {
	Apply(ctx context.Context, entry domain.ThemeEntry) error
}

// Mode selects whether Apply waits for the command.
type Mode int

const (
	// Launch starts the command and returns without waiting.
	Launch Mode = iota
	// Wait runs the command to completion.
	Wait
)

// CommandApplier applies a theme by running a command with the theme name
// appended as its last argument. No shell is involved.
type CommandApplier struct {
	argv   []string
	runner domain.CommandRunner
	out    *console.OutputState
	mode   Mode
}

// NewCommandApplier parses commandLine with shell quoting rules.
func NewCommandApplier(commandLine string, runner domain.CommandRunner, out *console.OutputState, mode Mode) (*CommandApplier, error) {
	argv, err := shlex.Split(commandLine, true)
	if err != nil {
		return nil, fmt.Errorf("parse apply command %q: %w", commandLine, err)
	}

	if len(argv) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	if out == nil {
		out = console.DefaultOutput
	}

	return &CommandApplier{argv: argv, runner: runner, out: out, mode: mode}, nil
}

// Command returns the parsed command line without the theme name.
func (a *CommandApplier) Command() []string {
	return append([]string(nil), a.argv...)
}

// Apply runs the command for entry.
func (a *CommandApplier) Apply(ctx context.Context, entry domain.ThemeEntry) error {
	if entry.Name == "" {
		return fmt.Errorf("%w: empty name", domain.ErrThemeNotFound)
	}

	args := make([]string, 0, len(a.argv))
	args = append(args, a.argv[1:]...)
	args = append(args, entry.Name)

	a.out.Infof("Executing: %s %s", strings.Join(a.argv, " "), entry.Name)

	var err error
	if a.mode == Wait {
		err = a.runner.Execute(ctx, a.argv[0], args...)
	} else {
		err = a.runner.Start(ctx, a.argv[0], args...)
	}

	if err != nil {
		return fmt.Errorf("apply theme %s: %w", entry.Name, err)
	}

	return nil
}
