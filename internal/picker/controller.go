// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package picker maps key events to carousel actions.
package picker

import (
	"context"

	"github.com/janderssonse/themepicker/internal/carousel"
	"github.com/janderssonse/themepicker/internal/console"
	"github.com/janderssonse/themepicker/internal/dispatch"
)

// Key is a host-independent key event.
type Key int

// Keys understood by the controller.
const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyConfirm
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Outcome tells the host what to do after a key event.
type Outcome int

const (
	// Ignored means the key was not consumed.
	Ignored Outcome = iota
	// Redraw means the state may have changed and a new frame is due.
	Redraw
	// Done means a theme was dispatched and the host should terminate.
	Done
)

// Controller owns the carousel state on behalf of the host event loop.
type Controller struct {
	state   *carousel.State
	applier dispatch.Applier
	out     *console.OutputState
	picked  string
}

// NewController returns a Controller driving state.
func NewController(state *carousel.State, applier dispatch.Applier, out *console.OutputState) *Controller {
	if out == nil {
		out = console.DefaultOutput
	}

	return &Controller{state: state, applier: applier, out: out}
}

// State returns the carousel state.
func (c *Controller) State() *carousel.State {
	return c.state
}

// Picked returns the name of the dispatched theme, or "".
func (c *Controller) Picked() string {
	return c.picked
}

// HandleKey applies key to the carousel.
func (c *Controller) HandleKey(ctx context.Context, key Key) Outcome {
	switch key {
	case KeyLeft:
		c.state.MoveLeft()
		return Redraw
	case KeyRight:
		c.state.MoveRight()
		return Redraw
	case KeyConfirm:
		return c.confirm(ctx)
	default:
		return Ignored
	}
}

func (c *Controller) confirm(ctx context.Context) Outcome {
	entry, ok := c.state.Confirm()
	if !ok {
		return Ignored
	}

	// A failed launch still ends the session.
	if err := c.applier.Apply(ctx, entry); err != nil {
		c.out.Errorf("Failed to apply theme %s: %v", entry.Name, err)
	}

	c.picked = entry.Name

	return Done
}
