// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/aibor/bootfs/internal/resolver"
	"github.com/aibor/bootfs/internal/synthetic"
)

const (
	defaultDirMode  = 0o755
	defaultFileMode = 0o644
)

var (
	// ErrInvalidEntry is returned if an overlay entry has none or more than
	// one of content, source and target set.
	ErrInvalidEntry = errors.New("invalid overlay entry")

	errNotRegular = errors.New("source is not a regular file")
)

// OverlayEntry is a single entry of an initramfs overlay archive.
//
// Exactly one of Content, Source, Target or Dir must be set.
type OverlayEntry struct {
	// Path within the archive.
	Path string

	// Content of a regular file.
	Content string

	// Source is the path in the source [fs.FS] a regular file is copied
	// from.
	Source string

	// Target makes the entry a symbolic link pointing to Target.
	Target string

	// Dir makes the entry a directory.
	Dir bool

	// Mode of the entry. If 0, a default mode is used.
	Mode fs.FileMode
}

// Validate checks that the entry has a path and exactly one type.
func (e OverlayEntry) Validate() error {
	if strings.Trim(e.Path, "/") == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidEntry)
	}

	types := 0

	for _, set := range []bool{e.Content != "", e.Source != "", e.Target != "", e.Dir} {
		if set {
			types++
		}
	}

	if types != 1 {
		return fmt.Errorf("%w: %s: exactly one of content, source, target, dir required",
			ErrInvalidEntry, e.Path)
	}

	return nil
}

// Overlay returns a [synthetic.Generator] that builds a cpio archive in newc
// format from the given entries. Such an archive can be appended to an initrd
// or passed as additional initrd, so the kernel unpacks it on top of the
// initramfs.
//
// Parent directories are added implicitly, with the mode of their own entry
// if there is one. Sources are read from source at request time.
func Overlay(entries []OverlayEntry, source fs.FS) synthetic.Generator {
	return func(name string, _ synthetic.Match) (*resolver.File, error) {
		var buf bytes.Buffer

		err := writeOverlay(&buf, entries, source)
		if err != nil {
			return nil, fmt.Errorf("build overlay: %w", err)
		}

		return resolver.NewBytesFile(name, buf.Bytes()), nil
	}
}

func writeOverlay(buf *bytes.Buffer, entries []OverlayEntry, source fs.FS) error {
	writer := newCPIOWriter(buf)
	dirs := map[string]bool{}
	dirModes := map[string]fs.FileMode{}

	for _, entry := range entries {
		err := entry.Validate()
		if err != nil {
			return err
		}

		name := entryName(entry)
		if _, exists := dirModes[name]; entry.Dir && !exists {
			dirModes[name] = entry.Mode
		}
	}

	for _, entry := range entries {
		name := entryName(entry)
		if entry.Dir && dirs[name] {
			continue
		}

		err := writeParents(writer, dirs, dirModes, path.Dir(name))
		if err != nil {
			return err
		}

		if entry.Dir {
			entry.Mode = dirModes[name]
		}

		err = writeEntry(writer, name, entry, source)
		if err != nil {
			return err
		}

		if entry.Dir {
			dirs[name] = true
		}
	}

	return writer.Close()
}

func entryName(entry OverlayEntry) string {
	return strings.Trim(path.Clean(entry.Path), "/")
}

// writeParents writes directory entries for dir and all its parents that are
// not yet written. Directories that have an entry of their own get the mode
// of the first such entry.
func writeParents(
	writer *cpioWriter,
	dirs map[string]bool,
	dirModes map[string]fs.FileMode,
	dir string,
) error {
	if dir == "." || dir == "/" || dirs[dir] {
		return nil
	}

	err := writeParents(writer, dirs, dirModes, path.Dir(dir))
	if err != nil {
		return err
	}

	dirs[dir] = true

	mode := dirModes[dir]
	if mode == 0 {
		mode = defaultDirMode
	}

	return writer.WriteDirectory(dir, mode)
}

func writeEntry(writer *cpioWriter, name string, entry OverlayEntry, source fs.FS) error {
	mode := entry.Mode

	switch {
	case entry.Dir:
		if mode == 0 {
			mode = defaultDirMode
		}

		return writer.WriteDirectory(name, mode)
	case entry.Target != "":
		return writer.WriteLink(name, entry.Target)
	case entry.Source != "":
		if source == nil {
			return fmt.Errorf("%w: %s: no source file system", ErrInvalidEntry, name)
		}

		file, err := source.Open(strings.TrimPrefix(path.Clean(entry.Source), "/"))
		if err != nil {
			return fmt.Errorf("open source: %w", err)
		}
		defer file.Close()

		return writer.WriteRegular(name, file, mode)
	default:
		if mode == 0 {
			mode = defaultFileMode
		}

		return writer.WriteData(name, []byte(entry.Content), mode)
	}
}
