// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

var (
	// ErrHelp is returned when help is requested.
	ErrHelp = pflag.ErrHelp

	// ErrReadBuildInfo is returned if build information can not be read.
	ErrReadBuildInfo = errors.New("failed to read build info")

	// ErrUnknownCommand is returned for unsupported commands.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrPathsNotFound is returned if any of the paths to resolve is not
	// found.
	ErrPathsNotFound = errors.New("paths not found")

	// ErrNoInterfaceAddress is returned if the configured server interface
	// has no IPv4 address.
	ErrNoInterfaceAddress = errors.New("interface has no IPv4 address")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
