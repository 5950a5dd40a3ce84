// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package testutil

import (
	"context"

	"github.com/janderssonse/themepicker/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCommandRunner is a mock implementation of CommandRunner port.
type MockCommandRunner struct {
	mock.Mock
}

func variadic(ctx context.Context, name string, args []string) []interface{} {
	callArgs := make([]interface{}, 0, len(args)+2)

	callArgs = append(callArgs, ctx, name)
	for _, arg := range args {
		callArgs = append(callArgs, arg)
	}

	return callArgs
}

// Execute mocks waiting command execution.
func (m *MockCommandRunner) Execute(ctx context.Context, name string, args ...string) error {
	return m.Called(variadic(ctx, name, args)...).Error(0)
}

// Start mocks fire-and-forget command execution.
func (m *MockCommandRunner) Start(ctx context.Context, name string, args ...string) error {
	return m.Called(variadic(ctx, name, args)...).Error(0)
}

// CommandExists mocks checking if a command exists.
func (m *MockCommandRunner) CommandExists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

// MockApplier is a mock implementation of the apply-theme port.
type MockApplier struct {
	mock.Mock
}

// Apply mocks applying a theme.
func (m *MockApplier) Apply(ctx context.Context, entry domain.ThemeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
