// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides shared command execution functionality.
package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/janderssonse/themepicker/internal/console"
)

// CommandRunner implements the CommandRunner port for real system commands.
type CommandRunner struct {
	dryRun  bool
	tuiMode bool // When true, keep child output off the terminal
	out     *console.OutputState
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(dryRun bool, out *console.OutputState) *CommandRunner {
	if out == nil {
		out = console.DefaultOutput
	}

	return &CommandRunner{
		dryRun: dryRun,
		out:    out,
	}
}

// NewTUICommandRunner creates a command runner that never writes to the terminal.
func NewTUICommandRunner(dryRun bool, out *console.OutputState) *CommandRunner {
	r := NewCommandRunner(dryRun, out)
	r.tuiMode = true

	return r
}

// Execute runs a command and waits for it to finish.
func (r *CommandRunner) Execute(ctx context.Context, name string, args ...string) error {
	if r.skip(name, args) {
		return nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	r.attach(cmd)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// Start launches a command and returns once it is running. The child is not
// waited for and keeps running after this process exits.
func (r *CommandRunner) Start(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.skip(name, args) {
		return nil
	}

	// #nosec G204 - argv comes from the user's own configuration
	cmd := exec.Command(name, args...)
	r.attach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release process: %w", err)
	}

	return nil
}

// CommandExists checks if a command is available on the system.
func (r *CommandRunner) CommandExists(name string) bool {
	_, err := exec.LookPath(name)

	return err == nil
}

func (r *CommandRunner) skip(name string, args []string) bool {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.out.Progressf("Running: %s", line)

	if r.dryRun {
		r.out.Infof("DRY RUN: %s", line)
	}

	return r.dryRun
}

// attach wires child stdio. In TUI mode it stays detached so the terminal is
// not corrupted.
func (r *CommandRunner) attach(cmd *exec.Cmd) {
	if r.tuiMode {
		return
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
}
