// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

// Backend resolves paths into files.
//
// The given name is always an absolute, clean path relative to the mount
// point of the backend. If the backend has no file for the name, it must
// return an error matching [ErrNotFound]. Implementations must be safe for
// concurrent use.
type Backend interface {
	Resolve(name string) (*File, error)
}

// BackendFunc is a function that implements [Backend].
type BackendFunc func(name string) (*File, error)

// Resolve implements [Backend].
func (f BackendFunc) Resolve(name string) (*File, error) {
	return f(name)
}
