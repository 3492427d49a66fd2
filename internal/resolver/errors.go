// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound is returned if no backend has a file for the requested
	// path.
	ErrNotFound = fs.ErrNotExist

	// ErrInvalidPrefix is returned if a mount prefix is not an absolute
	// path.
	ErrInvalidPrefix = errors.New("invalid mount prefix")

	// ErrNilBackend is returned if a mount is added without a backend.
	ErrNilBackend = errors.New("backend is nil")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError

// ConfigError wraps errors that occur while assembling the resolver stack.
//
// They are only returned during assembly and are supposed to be fatal.
type ConfigError struct {
	Subject string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return "config: " + e.Subject
	}

	return fmt.Sprintf("config: %s: %v", e.Subject, e.Err)
}

func (e *ConfigError) Is(other error) bool {
	_, ok := other.(*ConfigError)
	return ok
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
