// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"io/fs"
	"path"
	"time"
)

const defaultFileMode = 0o444

var _ fs.FS = (*FS)(nil)

// FS exposes a [Resolver] as read-only [fs.FS].
//
// It allows protocol implementations that serve from an [fs.FS] to use the
// resolver directly. Only regular files can be opened.
type FS struct {
	Resolver *Resolver
}

// Open resolves the named file.
//
// The name must be valid according to [fs.ValidPath]. It returns a
// [PathError] in case of errors.
func (fsys FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	file, err := fsys.Resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	return &openFile{
		info: fileInfo{
			name: path.Base(file.Path),
			size: file.Size,
		},
		file: file,
	}, nil
}

var _ fs.FileInfo = (*fileInfo)(nil)

type fileInfo struct {
	name string
	size int64
}

func (i *fileInfo) Name() string     { return i.name }
func (i *fileInfo) Size() int64      { return i.size }
func (*fileInfo) Mode() fs.FileMode  { return defaultFileMode }
func (*fileInfo) ModTime() time.Time { return time.Time{} }
func (*fileInfo) IsDir() bool        { return false }
func (*fileInfo) Sys() any           { return nil }
func (i *fileInfo) String() string   { return fs.FormatFileInfo(i) }

var _ fs.File = (*openFile)(nil)

type openFile struct {
	info fileInfo
	file *File
}

// Stat implements [fs.File].
func (f *openFile) Stat() (fs.FileInfo, error) {
	return &f.info, nil
}

// Read implements [fs.File].
func (f *openFile) Read(b []byte) (int, error) {
	return f.file.Read(b)
}

// Close implements [fs.File].
func (f *openFile) Close() error {
	return f.file.Close()
}
