// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package resolver composes several backends into a single read-only
// namespace for boot files.
//
// A [Resolver] is a stack of mounts. Each mount binds a [Backend] to a path
// prefix. Requests are sanitized first (see [Sanitize]) and then offered to
// every mount whose prefix matches, in the order the mounts were added. The
// first backend that returns a [File] wins. Backends signal that they do not
// have a file by returning an error matching [ErrNotFound].
//
// Mounts are added once during assembly. After that, a [Resolver] is safe for
// concurrent use by multiple goroutines.
package resolver
