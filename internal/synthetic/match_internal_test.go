// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package synthetic

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	regex := regexp.MustCompile(`^/(?P<base>[a-z]+)-(\d+)$`)
	match := Match{
		groups: regex.FindStringSubmatch("/vmlinuz-6"),
		names:  regex.SubexpNames(),
	}

	assert.Equal(t, 3, match.Len())
	assert.Equal(t, "/vmlinuz-6", match.Group(0))
	assert.Equal(t, "vmlinuz", match.Group(1))
	assert.Equal(t, "6", match.Group(2))
	assert.Empty(t, match.Group(3))
	assert.Empty(t, match.Group(-1))

	base, found := match.Named("base")
	assert.True(t, found)
	assert.Equal(t, "vmlinuz", base)

	_, found = match.Named("version")
	assert.False(t, found)

	_, found = match.Named("")
	assert.False(t, found)
}
