// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskfs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/aibor/bootfs/internal/resolver"
)

// ErrNotRegular is returned if the path exists but is not a regular file.
// It matches [resolver.ErrNotFound] as only regular files are served.
var ErrNotRegular = fmt.Errorf("%w: not a regular file", resolver.ErrNotFound)

// rootEscapeMessage is the message of the unexported error [os.Root] returns
// for paths that lead outside of the root, e.g. by symbolic links.
const rootEscapeMessage = "path escapes from parent"

// isAbsent returns true for errors that mean there is no file at the path.
// Paths escaping the root do not exist within it.
func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrInvalid) ||
		errors.Is(err, syscall.ENOTDIR) ||
		isRootEscape(err)
}

func isRootEscape(err error) bool {
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || pathErr.Err == nil {
		return false
	}

	return pathErr.Err.Error() == rootEscapeMessage
}

func absentError(op, name string) error {
	return &resolver.PathError{Op: op, Path: name, Err: resolver.ErrNotFound}
}
