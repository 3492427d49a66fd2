// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package synthetic

// Match holds the capture groups of a rule's pattern for a path.
type Match struct {
	groups []string
	names  []string
}

// Len returns the number of groups including the whole match at index 0.
func (m Match) Len() int {
	return len(m.groups)
}

// Group returns the text of the group with the given index. Index 0 is the
// whole match. It returns an empty string if the index is out of range.
func (m Match) Group(idx int) string {
	if idx < 0 || idx >= len(m.groups) {
		return ""
	}

	return m.groups[idx]
}

// Named returns the text of the group with the given name and true. If there
// is no such group, it returns false.
func (m Match) Named(name string) (string, bool) {
	for idx, groupName := range m.names {
		if groupName != "" && groupName == name && idx < len(m.groups) {
			return m.groups[idx], true
		}
	}

	return "", false
}
