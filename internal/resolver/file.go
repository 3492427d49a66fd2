// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"bytes"
	"io"
)

// File is a successfully resolved file.
//
// The caller owns it and must close it once done reading.
type File struct {
	// Path is the canonical path of the file within its backend. For real
	// files this is the path with the casing found on disk.
	Path string

	// Size is the number of bytes that can be read from the file.
	Size int64

	content io.ReadCloser
}

var _ io.ReadCloser = (*File)(nil)

// NewFile creates a new [File] that reads from the given content.
func NewFile(path string, size int64, content io.ReadCloser) *File {
	return &File{
		Path:    path,
		Size:    size,
		content: content,
	}
}

// NewBytesFile creates a new [File] with in-memory content.
func NewBytesFile(path string, data []byte) *File {
	return NewFile(path, int64(len(data)), io.NopCloser(bytes.NewReader(data)))
}

// Read implements [io.Reader].
func (f *File) Read(b []byte) (int, error) {
	if f.content == nil {
		return 0, io.EOF
	}

	return f.content.Read(b) //nolint:wrapcheck
}

// Close implements [io.Closer].
func (f *File) Close() error {
	if f.content == nil {
		return nil
	}

	return f.content.Close() //nolint:wrapcheck
}
