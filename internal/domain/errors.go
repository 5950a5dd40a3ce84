// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	ErrScanUnavailable  = errors.New("themes directory unavailable")
	ErrWallpaperMissing = errors.New("wallpaper not found")
	ErrDecodeFailure    = errors.New("wallpaper could not be decoded")
	ErrThemeNotFound    = errors.New("theme not found")
	ErrEmptyCommand     = errors.New("apply command is empty")
)

// ExitError carries a process exit code together with a user-facing message.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
