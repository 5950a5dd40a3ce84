// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface of the theme picker.
package cli

import (
	"context"
	"errors"

	"github.com/janderssonse/themepicker/internal/config"
	"github.com/janderssonse/themepicker/internal/console"
	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/janderssonse/themepicker/internal/picker"
	"github.com/janderssonse/themepicker/internal/platform"
	"github.com/janderssonse/themepicker/internal/render"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess       = 0  // Operation completed successfully
	ExitGeneralError  = 1  // Generic failure (catch-all)
	ExitUsageError    = 2  // Invalid command line usage
	ExitConfigError   = 3  // Configuration file error
	ExitNotFoundError = 5  // Requested theme not found
	ExitSystemError   = 12 // System call failed
	ExitThemeError    = 20 // Theme operation failed
)

// Version is set at build time.
var Version = "dev" //nolint:gochecknoglobals

// ErrNoDesktop is returned when the picker is built without a desktop window.
var ErrNoDesktop = errors.New("desktop window not available")

// DesktopHost runs the picker in a desktop window until a theme is picked.
type DesktopHost func(ctx context.Context, controller *picker.Controller, engine *render.Engine, win config.Window) error

// TerminalHost runs the picker in the terminal and returns the picked theme.
type TerminalHost func(ctx context.Context, controller *picker.Controller, engine *render.Engine) (string, error)

// RunnerFactory builds the command runner used to apply themes.
type RunnerFactory func(dryRun, tuiMode bool, out *console.OutputState) domain.CommandRunner

// Hosts bundles the pluggable parts of the CLI.
type Hosts struct {
	Desktop   DesktopHost
	Terminal  TerminalHost
	NewRunner RunnerFactory
}

// CLI wires configuration, hosts and commands together.
type CLI struct {
	app   *cli.Command
	out   *console.OutputState
	cfg   config.Config
	hosts Hosts

	configPath string
	themesDir  string
	command    string
	decode     string
	tui        bool
	dryRun     bool
	verbose    bool
	json       bool
	plain      bool
	yes        bool
}

// NewCLI creates the command tree. Hosts left nil are reported as
// unavailable when selected.
func NewCLI(hosts Hosts) *CLI {
	app := &CLI{
		out:   console.DefaultOutput,
		hosts: hosts,
	}

	app.app = &cli.Command{
		Name:    platform.AppName,
		Usage:   "Pick a theme from a strip of wallpaper thumbnails",
		Version: Version,
		Suggest: true,
		Description: `Shows every theme's wallpaper in a scrollable strip near the bottom of the
screen. Left and Right move the selection, Enter applies the selected theme.

Each theme is a directory under the themes directory holding a "wallpaper"
image (JPEG, PNG, WebP or BMP, detected by content).

EXAMPLES:
  theme-picker                        Open the picker window
  theme-picker --tui                  Pick inside the terminal
  theme-picker --json list            List themes for scripts
  theme-picker apply tokyo-night      Apply a theme without the picker`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config.toml",
				Value:       platform.GetConfigPath(),
				Destination: &app.configPath,
			},
			&cli.StringFlag{
				Name:        "themes-dir",
				Usage:       "directory holding one subdirectory per theme",
				Destination: &app.themesDir,
			},
			&cli.StringFlag{
				Name:        "command",
				Usage:       "command that applies a theme; the theme name is appended",
				Destination: &app.command,
			},
			&cli.StringFlag{
				Name:        "decode",
				Usage:       "wallpaper lookup: content or extension",
				Destination: &app.decode,
			},
			&cli.BoolFlag{
				Name:        "tui",
				Usage:       "run the picker in the terminal",
				Destination: &app.tui,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "print the apply command instead of running it",
				Destination: &app.dryRun,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages to stderr",
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "automatically answer yes to all prompts",
				Destination: &app.yes,
			},
		},
		Before: app.initConfig,
		Action: app.runPick,
		Commands: []*cli.Command{
			app.createListCommand(),
			app.createApplyCommand(),
			app.createVersionCommand(),
		},
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig validates global flags and loads the configuration.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	app.out.SetMode(app.verbose, app.json, app.plain)

	cfg, err := config.Load(app.configPath)
	if err != nil {
		return ctx, domain.NewExitError(ExitConfigError, "failed to load configuration", err)
	}

	overrides := config.Overrides{
		ThemesDir:    app.themesDir,
		ApplyCommand: app.command,
		Decode:       app.decode,
	}
	if err := cfg.Apply(overrides); err != nil {
		return ctx, domain.NewExitError(ExitConfigError, "invalid command line override", err)
	}

	app.cfg = cfg
	app.out.Progressf("Themes directory: %s", cfg.ThemesDir)

	return ctx, nil
}

func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			if app.json {
				app.out.JSONResult("success", map[string]any{"version": Version})

				return nil
			}

			app.out.Result(app.out.Bold(platform.AppName) + " " + Version)

			return nil
		},
	}
}

func (app *CLI) runner(tuiMode bool, out *console.OutputState) (domain.CommandRunner, error) {
	if app.hosts.NewRunner == nil {
		return nil, domain.NewExitError(ExitGeneralError, "no command runner configured", nil)
	}

	return app.hosts.NewRunner(app.dryRun, tuiMode, out), nil
}
