// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package generator

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/aibor/bootfs/internal/diskfs"
	"github.com/aibor/bootfs/internal/resolver"
	"github.com/aibor/bootfs/internal/synthetic"
	"github.com/aibor/bootfs/internal/version"
)

const (
	baseGroup   = "base"
	suffixGroup = "suffix"
)

// LatestSpec describes which files [Latest] chooses from.
type LatestSpec struct {
	// FS the files are read from.
	FS fs.FS

	// Dir is the directory in FS that is searched.
	Dir string

	// Base is the fixed file name prefix. If empty, the capture group
	// "base" is used, or the first group if there is no such group.
	Base string

	// Suffix is the fixed file name suffix. If empty, the capture group
	// "suffix" is used if present.
	Suffix string
}

// Latest returns a [synthetic.Generator] that serves the file with the
// highest version tag in the directory given by spec. Versions are compared
// with [version.Compare].
//
// The resolved file has the path of the chosen file in spec.FS. If no file
// matches, there is no file.
func Latest(spec LatestSpec) synthetic.Generator {
	backend := diskfs.New(spec.FS)

	return func(_ string, match synthetic.Match) (*resolver.File, error) {
		base := spec.Base
		if base == "" {
			var found bool

			base, found = match.Named(baseGroup)
			if !found {
				base = match.Group(1)
			}
		}

		suffix := spec.Suffix
		if suffix == "" {
			suffix, _ = match.Named(suffixGroup)
		}

		if base == "" {
			return nil, resolver.ErrNotFound
		}

		name, err := version.FindHighestIn(spec.FS, spec.Dir, base, suffix)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, resolver.ErrNotFound
			}

			return nil, fmt.Errorf("find latest: %w", err)
		}

		return backend.Resolve(name)
	}
}
