// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootmenu

import "errors"

var (
	// ErrMissingField is returned if a required label field is empty.
	ErrMissingField = errors.New("missing field")

	// ErrDuplicateLabel is returned if two labels have the same name.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrMultipleDefaults is returned if more than one label is the default.
	ErrMultipleDefaults = errors.New("multiple default labels")
)
