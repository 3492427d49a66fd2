// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskfs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/aibor/bootfs/internal/resolver"
)

var _ resolver.Backend = (*CaseFoldingBackend)(nil)

// CaseFoldingBackend serves regular files from an [fs.FS] and matches path
// components case-insensitively.
//
// Each component is looked up on its own. If an entry with the exact name
// exists, it is used. Otherwise, the first directory entry in lexical order
// that matches case-insensitively is used. The resolved [resolver.File] has
// the on-disk path.
type CaseFoldingBackend struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewCaseFolding creates a new [CaseFoldingBackend] serving from fsys. If
// logger is nil, nothing is logged.
func NewCaseFolding(fsys fs.FS, logger *slog.Logger) *CaseFoldingBackend {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &CaseFoldingBackend{
		fsys:   fsys,
		logger: logger,
	}
}

// Resolve implements [resolver.Backend].
func (b *CaseFoldingBackend) Resolve(name string) (*resolver.File, error) {
	name = path.Clean("/" + name)

	realPath, err := b.recoverCase(name)
	if err != nil {
		return nil, err
	}

	if realPath == name {
		b.logger.Info("Path matches on-disk casing",
			slog.String("path", name))
	} else {
		b.logger.Info("Recovered on-disk casing",
			slog.String("path", name),
			slog.String("real_path", realPath))
	}

	return openRegular(b.fsys, realPath)
}

// recoverCase returns the absolute on-disk path for name.
func (b *CaseFoldingBackend) recoverCase(name string) (string, error) {
	current := "."
	isDir := true

	for component := range strings.SplitSeq(name, "/") {
		if component == "" {
			continue
		}

		if !isDir {
			return "", absentError("lookup", "/"+path.Join(current, component))
		}

		var err error

		current, isDir, err = b.lookup(current, component)
		if err != nil {
			return "", err
		}
	}

	if current == "." {
		return "/", nil
	}

	return "/" + current, nil
}

// lookup returns the path of the entry in dir matching name and if it is a
// directory.
func (b *CaseFoldingBackend) lookup(dir, name string) (string, bool, error) {
	exact := path.Join(dir, name)

	info, err := fs.Stat(b.fsys, exact)
	if err == nil {
		return exact, info.IsDir(), nil
	}

	entries, err := fs.ReadDir(b.fsys, dir)
	if err != nil {
		if isAbsent(err) {
			return "", false, absentError("lookup", "/"+exact)
		}

		return "", false, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !strings.EqualFold(entry.Name(), name) {
			continue
		}

		folded := path.Join(dir, entry.Name())

		// Stat again, so symbolic links are followed.
		info, err := fs.Stat(b.fsys, folded)
		if err != nil {
			return "", false, absentError("lookup", "/"+folded)
		}

		return folded, info.IsDir(), nil
	}

	return "", false, absentError("lookup", "/"+exact)
}
