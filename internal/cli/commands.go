// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/janderssonse/themepicker/internal/carousel"
	"github.com/janderssonse/themepicker/internal/console"
	"github.com/janderssonse/themepicker/internal/dispatch"
	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/janderssonse/themepicker/internal/picker"
	"github.com/janderssonse/themepicker/internal/platform"
	"github.com/janderssonse/themepicker/internal/render"
	"github.com/janderssonse/themepicker/internal/themes"
	"github.com/janderssonse/themepicker/internal/tui"
	"github.com/urfave/cli/v3"
)

// themeInfo is the JSON shape of a listed theme.
type themeInfo struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List themes with a decodable wallpaper",
		Description: `Scans the themes directory the same way the picker does.

Examples:
  theme-picker list                 # Table on a terminal, names when piped
  theme-picker --json list          # Names and wallpaper sizes as JSON`,
		Action: app.runList,
	}
}

func (app *CLI) createApplyCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Apply a theme by name without opening the picker",
		ArgsUsage: "NAME",
		Description: `Runs the apply command with NAME appended and waits for it to finish.

Examples:
  theme-picker apply nord
  theme-picker --yes --command "omarchy-theme-set" apply tokyo-night`,
		Action: app.runApply,
	}
}

func (app *CLI) scan(out *console.OutputState) ([]domain.ThemeEntry, error) {
	loader, err := app.cfg.Loader()
	if err != nil {
		return nil, domain.NewExitError(ExitConfigError, "invalid decode setting", err)
	}

	return themes.NewScanner(loader, out).Scan(app.cfg.ThemesDir), nil
}

func (app *CLI) runList(_ context.Context, _ *cli.Command) error {
	if !platform.IsDir(app.cfg.ThemesDir) {
		return domain.NewExitError(ExitNotFoundError,
			"themes directory not found: "+app.cfg.ThemesDir, domain.ErrScanUnavailable)
	}

	entries, err := app.scan(app.out.Diagnostics())
	if err != nil {
		return err
	}

	switch {
	case app.json:
		infos := make([]themeInfo, 0, len(entries))
		for _, e := range entries {
			size := e.Image.Bounds().Size()
			infos = append(infos, themeInfo{Name: e.Name, Title: tui.DisplayName(e.Name), Width: size.X, Height: size.Y})
		}

		app.out.JSONResult("success", map[string]any{
			"themes_dir": app.cfg.ThemesDir,
			"themes":     infos,
		})
	case app.plain || !app.out.IsTTY():
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name)
		}

		app.out.PlainList(names)
	default:
		md := themesMarkdown(app.cfg.ThemesDir, entries)

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			app.out.Result(md)

			return nil
		}

		rendered, err := renderer.Render(md)
		if err != nil {
			rendered = md
		}

		app.out.Result(strings.TrimRight(rendered, "\n"))
	}

	return nil
}

// themesMarkdown renders the theme list as a markdown table.
func themesMarkdown(dir string, entries []domain.ThemeEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Themes\n\n`%s`\n\n", dir)

	if len(entries) == 0 {
		b.WriteString("_No themes with a decodable wallpaper._\n")

		return b.String()
	}

	b.WriteString("| # | Theme | Directory | Wallpaper |\n")
	b.WriteString("|---|---|---|---|\n")

	for i, e := range entries {
		size := e.Image.Bounds().Size()
		fmt.Fprintf(&b, "| %d | %s | `%s` | %dx%d |\n", i+1, tui.DisplayName(e.Name), e.Name, size.X, size.Y)
	}

	return b.String()
}

func (app *CLI) runApply(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return domain.NewExitError(ExitUsageError, "apply takes exactly one theme name", nil)
	}

	name := cmd.Args().First()

	loader, err := app.cfg.Loader()
	if err != nil {
		return domain.NewExitError(ExitConfigError, "invalid decode setting", err)
	}

	if _, err := themes.NewScanner(loader, app.out).Find(app.cfg.ThemesDir, name); err != nil {
		return domain.NewExitError(ExitNotFoundError, fmt.Sprintf("theme %q not found in %s", name, app.cfg.ThemesDir), err)
	}

	if !app.yes && !app.json && app.out.IsTTY() {
		confirmed, err := confirmApply(name)
		if err != nil {
			return domain.NewExitError(ExitGeneralError, "confirmation failed", err)
		}

		if !confirmed {
			app.out.Infof("Cancelled")

			return nil
		}
	}

	runner, err := app.runner(false, app.out)
	if err != nil {
		return err
	}

	applier, err := dispatch.NewCommandApplier(app.cfg.ApplyCommand, runner, app.out, dispatch.Wait)
	if err != nil {
		return domain.NewExitError(ExitConfigError, "invalid apply command", err)
	}

	if program := applier.Command()[0]; !app.dryRun && !runner.CommandExists(program) {
		app.out.Warningf("%s not found in PATH", program)
	}

	if err := applier.Apply(ctx, domain.ThemeEntry{Name: name}); err != nil {
		return domain.NewExitError(ExitThemeError, "failed to apply theme "+name, err)
	}

	if app.json {
		app.out.JSONResult("success", map[string]any{"theme": name, "dry_run": app.dryRun})
	} else {
		app.out.Successf("Applied theme %s", name)
	}

	return nil
}

func confirmApply(name string) (bool, error) {
	confirmed := true

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("▸ Apply %s?", tui.DisplayName(name))).
				Affirmative("Apply").
				Negative("Cancel").
				Value(&confirmed),
		),
	).Run()

	return confirmed, err
}

// runPick is the root action: scan, then hand the carousel to a host.
func (app *CLI) runPick(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(ExitUsageError,
			fmt.Sprintf("'%s' is not a command. Run '%s --help' to see available commands.", cmd.Args().First(), platform.AppName), nil)
	}

	if app.tui {
		return app.pickInTerminal(ctx)
	}

	return app.pickOnDesktop(ctx)
}

func (app *CLI) session(out *console.OutputState, tuiMode bool) (*picker.Controller, *render.Engine, error) {
	entries, err := app.scan(out)
	if err != nil {
		return nil, nil, err
	}

	if len(entries) == 0 {
		out.Warningf("No themes found in %s", app.cfg.ThemesDir)
	}

	background, err := app.cfg.BackgroundColor()
	if err != nil {
		return nil, nil, domain.NewExitError(ExitConfigError, "invalid background color", err)
	}

	runner, err := app.runner(tuiMode, out)
	if err != nil {
		return nil, nil, err
	}

	applier, err := dispatch.NewCommandApplier(app.cfg.ApplyCommand, runner, out, dispatch.Launch)
	if err != nil {
		return nil, nil, domain.NewExitError(ExitConfigError, "invalid apply command", err)
	}

	layout := app.cfg.RenderLayout()
	state := carousel.New(entries, layout.Geometry(0))

	return picker.NewController(state, applier, out), render.NewEngine(layout, background), nil
}

func (app *CLI) pickOnDesktop(ctx context.Context) error {
	if app.hosts.Desktop == nil {
		return domain.NewExitError(ExitGeneralError, "this build has no desktop window, use --tui", ErrNoDesktop)
	}

	controller, engine, err := app.session(app.out, false)
	if err != nil {
		return err
	}

	if err := app.hosts.Desktop(ctx, controller, engine, app.cfg.Window); err != nil {
		return domain.NewExitError(ExitSystemError, "failed to open picker window", err)
	}

	return nil
}

func (app *CLI) pickInTerminal(ctx context.Context) error {
	if app.hosts.Terminal == nil {
		return domain.NewExitError(ExitGeneralError, "terminal picker not available", nil)
	}

	// Diagnostics written while the alternate screen is active are replayed afterwards.
	var pendingOut, pendingErr bytes.Buffer

	deferred := console.NewBuffered(&pendingOut, &pendingErr)
	deferred.SetMode(app.verbose, app.json, app.plain)

	controller, engine, err := app.session(deferred, true)
	if err != nil {
		app.replay(&pendingOut, &pendingErr)

		return err
	}

	picked, err := app.hosts.Terminal(ctx, controller, engine)

	app.replay(&pendingOut, &pendingErr)

	if err != nil {
		if errors.Is(err, tui.ErrNoTerminal) {
			return domain.NewExitError(ExitGeneralError, "Failed to launch interactive interface (terminal required)", err)
		}

		return domain.NewExitError(ExitGeneralError, "Failed to launch TUI", err)
	}

	app.reportPick(picked)

	return nil
}

func (app *CLI) reportPick(picked string) {
	if picked == "" {
		app.out.Progressf("No theme picked")

		return
	}

	if app.json {
		app.out.JSONResult("success", map[string]any{"theme": picked, "dry_run": app.dryRun})
	}
}

func (app *CLI) replay(pendingOut, pendingErr *bytes.Buffer) {
	_, _ = io.Copy(app.out.Stdout(), pendingOut)
	_, _ = io.Copy(app.out.Stderr(), pendingErr)
}
