// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskfs

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/aibor/bootfs/internal/resolver"
)

var _ resolver.Backend = (*Backend)(nil)

// Backend serves regular files from an [fs.FS] with the exact path given.
type Backend struct {
	fsys fs.FS
}

// New creates a new [Backend] serving from fsys.
func New(fsys fs.FS) *Backend {
	return &Backend{fsys: fsys}
}

// Resolve implements [resolver.Backend].
func (b *Backend) Resolve(name string) (*resolver.File, error) {
	return openRegular(b.fsys, path.Clean("/"+name))
}

// OpenRoot opens the directory dir as root for a [Backend] or
// [CaseFoldingBackend]. Paths can not escape the root, neither by ".."
// elements nor by symbolic links. The caller must close it once the backends
// are not used anymore.
func OpenRoot(dir string) (*os.Root, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open root: %w", err)
	}

	return root, nil
}

// fsName translates the absolute path name into a path valid for [fs.FS].
func fsName(name string) string {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}

	return name
}

// openRegular opens the file at the absolute path name in fsys.
func openRegular(fsys fs.FS, name string) (*resolver.File, error) {
	file, err := fsys.Open(fsName(name))
	if err != nil {
		if isAbsent(err) {
			return nil, absentError("open", name)
		}

		return nil, fmt.Errorf("open: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}

	if !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, &resolver.PathError{Op: "open", Path: name, Err: ErrNotRegular}
	}

	adviseSequential(file)

	return resolver.NewFile(name, info.Size(), file), nil
}
