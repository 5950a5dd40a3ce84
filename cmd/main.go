// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the entry point of the theme picker.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"
	adapter "github.com/janderssonse/themepicker/internal/adapters/platform"
	"github.com/janderssonse/themepicker/internal/cli"
	"github.com/janderssonse/themepicker/internal/console"
	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/janderssonse/themepicker/internal/platform"
	"github.com/janderssonse/themepicker/internal/tui"
	"github.com/janderssonse/themepicker/internal/window"
)

func main() {
	os.Exit(run())
}

func newRunner(dryRun, tuiMode bool, out *console.OutputState) domain.CommandRunner {
	if tuiMode {
		return adapter.NewTUICommandRunner(dryRun, out)
	}

	return adapter.NewCommandRunner(dryRun, out)
}

func run() int {
	// Only one picker may be open at a time.
	lock := flock.New(platform.GetLockPath())

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)

		return cli.ExitSystemError
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another %s instance is already running\n", platform.AppName)

		return cli.ExitGeneralError
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to release process lock: %v\n", unlockErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewCLI(cli.Hosts{
		Desktop:   window.Run,
		Terminal:  tui.Run,
		NewRunner: newRunner,
	})

	if err := app.Run(ctx, os.Args); err != nil {
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Error())

			return exitErr.Code
		}

		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)

		return cli.ExitGeneralError
	}

	return cli.ExitSuccess
}
