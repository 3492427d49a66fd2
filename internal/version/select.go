// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
)

// Highest returns the name with the highest version tag.
//
// On ties the first one seen wins. It returns an empty string if names is
// empty.
func Highest(base, suffix string, names []string) string {
	if len(names) == 0 {
		return ""
	}

	highest := names[0]
	highestTag := Tag(base, suffix, highest)

	for _, name := range names[1:] {
		tag := Tag(base, suffix, name)
		if Compare(tag, highestTag) == Greater {
			highest = name
			highestTag = tag
		}
	}

	return highest
}

// Filter returns the regular expression matching names that consist of base,
// a non-empty version tag and suffix. Base and suffix are literals.
func Filter(base, suffix string) *regexp.Regexp {
	return regexp.MustCompile(
		"^" + regexp.QuoteMeta(base) + ".+" + regexp.QuoteMeta(suffix) + "$",
	)
}

// FindHighest returns the name with the highest version out of all names that
// match [Filter] for base and suffix. It returns false if none matches.
func FindHighest(base, suffix string, names []string) (string, bool) {
	filter := Filter(base, suffix)
	candidates := make([]string, 0, len(names))

	for _, name := range names {
		if filter.MatchString(name) {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	return Highest(base, suffix, candidates), true
}

// FindHighestIn lists the directory dir of fsys and returns the path of the
// entry with the highest version.
//
// Directory entries are skipped. It returns an error matching
// [fs.ErrNotExist] if there is no candidate.
func FindHighestIn(fsys fs.FS, dir, base, suffix string) (string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", fmt.Errorf("list candidates: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}

	name, found := FindHighest(base, suffix, names)
	if !found {
		return "", &fs.PathError{
			Op:   "find",
			Path: path.Join(dir, base+"*"+suffix),
			Err:  fs.ErrNotExist,
		}
	}

	return path.Join(dir, name), nil
}
