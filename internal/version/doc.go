// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version orders version-tagged file names like "vmlinuz-6.1.0-13"
// and picks the newest one out of a set of candidates.
//
// A file name consists of a fixed base, a version tag and a fixed suffix. The
// tag is split at its first hyphen into a dotted front and an optional back
// part, e.g. "6.1.0-13" has front "6.1.0" and back "13". Components are
// compared numerically where possible. Malformed tags never cause errors, they
// are ordered lexically instead.
package version
