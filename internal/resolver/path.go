// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"path"
	"strings"
	"unicode/utf8"
)

const separator = "/"

// Sanitize returns the canonical form of a requested path.
//
// Backslashes are treated as separators, "." and ".." elements are collapsed
// and the result always starts with a separator. ".." can not escape the root.
func Sanitize(name string) string {
	name = strings.ReplaceAll(name, `\`, separator)
	return path.Clean(separator + name)
}

// cleanPrefix returns the normalized mount prefix that always ends with a
// separator.
func cleanPrefix(prefix string) (string, error) {
	if !path.IsAbs(prefix) || strings.Contains(prefix, `\`) {
		return "", ErrInvalidPrefix
	}

	prefix = path.Clean(prefix)
	if prefix != separator {
		prefix += separator
	}

	return prefix, nil
}

// subPath returns the part of name below prefix with a single leading
// separator. It returns false if name is not below prefix.
func subPath(name, prefix string, caseSensitive bool) (string, bool) {
	if caseSensitive {
		if !strings.HasPrefix(name, prefix) {
			return "", false
		}

		return name[len(prefix)-1:], true
	}

	end, matches := foldedPrefixLen(name, prefix)
	if !matches {
		return "", false
	}

	return name[end-1:], true
}

// foldedPrefixLen returns the number of bytes at the start of name that
// equal prefix under Unicode case folding. Case variants may differ in their
// encoded length, so the comparison is done rune by rune.
func foldedPrefixLen(name, prefix string) (int, bool) {
	offset := 0

	for _, want := range prefix {
		if offset >= len(name) {
			return 0, false
		}

		got, size := utf8.DecodeRuneInString(name[offset:])
		if got != want && !strings.EqualFold(string(got), string(want)) {
			return 0, false
		}

		offset += size
	}

	return offset, true
}
