// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package diskfs provides backends that serve regular files from a real file
// system.
//
// [Backend] looks up paths case-sensitively as they are. [CaseFoldingBackend]
// recovers the on-disk casing of paths requested by clients that do not
// preserve case, like some PXE firmware implementations.
//
// Both operate on an [io/fs.FS]. Use [OpenRoot] to get one that can not be
// escaped by symbolic links.
package diskfs
