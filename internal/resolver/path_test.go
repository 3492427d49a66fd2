// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver_test

import (
	"testing"

	"github.com/aibor/bootfs/internal/resolver"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "/"},
		{"/", "/"},
		{"pxelinux.0", "/pxelinux.0"},
		{`a\b`, "/a/b"},
		{`\pxelinux.cfg\default`, "/pxelinux.cfg/default"},
		{"/a/./b//c/", "/a/b/c"},
		{"../../etc/passwd", "/etc/passwd"},
		{"/boot/../../x", "/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.Sanitize(tt.input))
		})
	}
}
