// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"context"
)

// CommandRunner defines the interface for executing system commands.
type CommandRunner interface {
	// Execute runs a command and waits for it to finish.
	Execute(ctx context.Context, name string, args ...string) error

	// Start launches a command and returns without waiting for it.
	Start(ctx context.Context, name string, args ...string) error

	// CommandExists checks if a command is available on the system.
	CommandExists(name string) bool
}
