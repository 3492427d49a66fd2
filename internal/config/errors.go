// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "errors"

var (
	// ErrUnknownBackend is returned for unsupported mount backend types.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrUnknownGenerator is returned for unsupported rule generator types.
	ErrUnknownGenerator = errors.New("unknown generator")

	// ErrUnknownLabelType is returned for unsupported menu label types.
	ErrUnknownLabelType = errors.New("unknown label type")

	// ErrMissingField is returned if a required field is not set.
	ErrMissingField = errors.New("missing field")

	// ErrUnexpectedField is returned if a field is set that does not belong
	// to the chosen type.
	ErrUnexpectedField = errors.New("unexpected field")
)
