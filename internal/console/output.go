// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console formats diagnostics and command results for the terminal.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputState holds global output configuration.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool

	// Out and Err default to os.Stdout and os.Stderr when nil.
	Out io.Writer
	Err io.Writer
}

// DefaultOutput provides output formatting utilities.
var DefaultOutput = &OutputState{} //nolint:gochecknoglobals

// NewBuffered returns an OutputState writing to the given writers.
func NewBuffered(out, errOut io.Writer) *OutputState {
	return &OutputState{Out: out, Err: errOut}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, json, plain bool) {
	o.Verbose = verbose
	o.JSON = json
	o.Plain = plain
}

// Stdout returns the result stream.
func (o *OutputState) Stdout() io.Writer {
	if o.Out != nil {
		return o.Out
	}

	return os.Stdout
}

// Stderr returns the diagnostics stream.
func (o *OutputState) Stderr() io.Writer {
	if o.Err != nil {
		return o.Err
	}

	return os.Stderr
}

// IsTTY checks if output is going to a terminal (not piped/redirected).
func (o *OutputState) IsTTY() bool {
	if o.Out != nil {
		f, ok := o.Out.(*os.File)

		return ok && term.IsTerminal(int(f.Fd()))
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Bold formats text with bold when in TTY, uppercase when piped.
func (o *OutputState) Bold(text string) string {
	if o.JSON || o.Plain {
		return text
	}

	// Check no-color.org standards
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return text
	}

	if o.IsTTY() {
		return "\033[1m" + text + "\033[0m"
	}

	return strings.ToUpper(text)
}

// Infof writes diagnostic lines to stdout. JSON mode keeps stdout machine-readable.
func (o *OutputState) Infof(format string, args ...any) {
	if o.JSON {
		return
	}

	_, _ = fmt.Fprintf(o.Stdout(), format+"\n", args...)
}

// Progressf writes progress messages to stderr (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.Stderr(), format+"\n", args...)
	}
}

// Successf writes success messages to stderr (only if not JSON/Plain).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.Stderr(), "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages to stderr (always visible).
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.Stderr(), "warning: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.Stderr(), "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.Stderr(), "error: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.Stderr(), "✗ "+format+"\n", args...)
	}
}

// Result writes command results to stdout (machine-readable primary output).
func (o *OutputState) Result(data any) {
	_, _ = fmt.Fprintf(o.Stdout(), "%v\n", data)
}

// JSONResult writes structured JSON results to stdout.
func (o *OutputState) JSONResult(status string, data map[string]any) {
	result := map[string]any{
		"status": status,
	}
	maps.Copy(result, data)

	if err := json.NewEncoder(o.Stdout()).Encode(result); err != nil {
		// Best effort - output encoding errors shouldn't crash the program
		_, _ = fmt.Fprintf(o.Stderr(), "error encoding JSON: %v\n", err)
	}
}

// PlainList outputs a simple list of items, one per line.
func (o *OutputState) PlainList(items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintf(o.Stdout(), "%s\n", item)
	}
}

// Diagnostics returns a copy whose stdout lines go to stderr, keeping stdout
// free for command results.
func (o *OutputState) Diagnostics() *OutputState {
	return &OutputState{
		Verbose: o.Verbose,
		Plain:   o.Plain,
		Out:     o.Stderr(),
		Err:     o.Stderr(),
	}
}
