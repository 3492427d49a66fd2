// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"errors"
	"log/slog"
	"slices"
)

// Mount binds a [Backend] to a path prefix.
type Mount struct {
	Backend Backend

	// Prefix is the clean absolute path the backend is mounted at. It always
	// ends with a separator.
	Prefix string

	// CaseSensitive determines if the prefix is compared case-sensitively.
	CaseSensitive bool
}

// Resolver is an ordered stack of mounts.
//
// Mounts must be added with [Resolver.AddMount] before the resolver is used.
// Once assembled, [Resolver.Resolve] may be called concurrently.
type Resolver struct {
	mounts []Mount
	logger *slog.Logger
}

// New creates a new empty [Resolver]. If logger is nil, nothing is logged.
func New(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{
		logger: logger,
	}
}

// AddMount adds the backend at the given prefix. Mounts added earlier take
// precedence over mounts added later.
//
// It returns a [ConfigError] if the prefix is not an absolute path or the
// backend is nil.
func (r *Resolver) AddMount(backend Backend, prefix string, caseSensitive bool) error {
	if backend == nil {
		return &ConfigError{Subject: "mount " + prefix, Err: ErrNilBackend}
	}

	cleaned, err := cleanPrefix(prefix)
	if err != nil {
		return &ConfigError{Subject: "mount " + prefix, Err: err}
	}

	r.mounts = append(r.mounts, Mount{
		Backend:       backend,
		Prefix:        cleaned,
		CaseSensitive: caseSensitive,
	})

	return nil
}

// Mounts returns a copy of the mounts in resolution order.
func (r *Resolver) Mounts() []Mount {
	return slices.Clone(r.mounts)
}

// Resolve returns the file for the requested path.
//
// The path is sanitized with [Sanitize] first. Then all mounts are tried in
// order. The first backend that returns a file wins. If no backend has the
// file, a [PathError] matching [ErrNotFound] is returned. Any other error
// returned by a backend aborts the resolution and is returned wrapped in a
// [PathError].
func (r *Resolver) Resolve(name string) (*File, error) {
	requested := Sanitize(name)

	for _, mount := range r.mounts {
		sub, matches := subPath(requested, mount.Prefix, mount.CaseSensitive)
		if !matches {
			continue
		}

		r.logger.Debug("Trying mount",
			slog.String("path", requested),
			slog.String("prefix", mount.Prefix),
			slog.String("sub_path", sub))

		file, err := mount.Backend.Resolve(sub)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}

			return nil, &PathError{Op: "resolve", Path: requested, Err: err}
		}

		if file == nil {
			continue
		}

		return file, nil
	}

	return nil, &PathError{Op: "resolve", Path: requested, Err: ErrNotFound}
}
