// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bootmenu renders PXELINUX boot menus.
//
// A [Menu] is a list of labels. Each label variant is its own type with the
// fields it needs: [Local], [Chain], [Linux], [NFSRoot], [ELF] and
// [Separator]. All of them share [Options] for menu related settings.
package bootmenu
