// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package diskfs

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

type fdFile interface {
	Fd() uintptr
}

// adviseSequential tells the kernel the file is read from start to end.
// Errors are ignored.
func adviseSequential(file fs.File) {
	osFile, ok := file.(fdFile)
	if !ok {
		return
	}

	_ = unix.Fadvise(int(osFile.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
