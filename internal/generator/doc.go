// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package generator provides the [synthetic.Generator] implementations used by
// the boot file server: boot menus, the newest kernel or initrd of a
// directory and initramfs overlay archives.
package generator
