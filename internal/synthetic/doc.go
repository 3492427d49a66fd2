// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package synthetic provides a backend that generates file content on demand.
//
// Requested paths are matched against regular expressions registered with
// [Backend.AddRule]. The [Generator] of a matching rule produces the file. If
// it has nothing to produce, the next matching rule is tried.
package synthetic
