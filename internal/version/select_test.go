// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package version_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/aibor/bootfs/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighest(t *testing.T) {
	tests := []struct {
		name     string
		suffix   string
		names    []string
		expected string
	}{
		{
			name:     "empty",
			expected: "",
		},
		{
			name:     "single",
			names:    []string{"vmlinuz-1.2"},
			expected: "vmlinuz-1.2",
		},
		{
			name:     "numeric components",
			names:    []string{"vmlinuz-1.2", "vmlinuz-1.10", "vmlinuz-1.9"},
			expected: "vmlinuz-1.10",
		},
		{
			name:     "back part",
			names:    []string{"vmlinuz-2.6.24-3", "vmlinuz-2.6.24-12", "vmlinuz-2.6.22-20"},
			expected: "vmlinuz-2.6.24-12",
		},
		{
			name:     "integer beyond int64",
			names:    []string{"vmlinuz-2", "vmlinuz-20240101000000000000"},
			expected: "vmlinuz-20240101000000000000",
		},
		{
			name:     "with suffix",
			suffix:   "-686",
			names:    []string{"vmlinuz-2.6.18-686", "vmlinuz-2.6.24-686"},
			expected: "vmlinuz-2.6.24-686",
		},
		{
			name:     "first seen wins on tie",
			names:    []string{"vmlinuz-01", "vmlinuz-1"},
			expected: "vmlinuz-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := version.Highest("vmlinuz-", tt.suffix, tt.names)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestFindHighest(t *testing.T) {
	names := []string{
		"vmlinuz-2.6.22-686",
		"vmlinuz-2.6.24-686",
		"vmlinuz-2.6.26-amd64",
		"vmlinuz-",
		"initrd.img-2.6.26-686",
		"vmlinuz-2.6.24-686.bak",
	}

	t.Run("found", func(t *testing.T) {
		actual, found := version.FindHighest("vmlinuz-", "-686", names)
		require.True(t, found)
		assert.Equal(t, "vmlinuz-2.6.24-686", actual)
	})

	t.Run("not found", func(t *testing.T) {
		_, found := version.FindHighest("vmlinuz-", "-arm64", names)
		assert.False(t, found)
	})

	t.Run("base is literal", func(t *testing.T) {
		actual, found := version.FindHighest("initrd.img-", "", []string{
			"initrdximg-9",
			"initrd.img-1",
		})
		require.True(t, found)
		assert.Equal(t, "initrd.img-1", actual)
	})
}

func TestFindHighestIn(t *testing.T) {
	fsys := fstest.MapFS{
		"kernels/vmlinuz-6.1.0-10":     {Data: []byte("a")},
		"kernels/vmlinuz-6.1.0-9":      {Data: []byte("b")},
		"kernels/vmlinuz-6.10.0-1":     {Data: []byte("c")},
		"kernels/vmlinuz-7.0.0/readme": {Data: []byte("dir")},
		"kernels/initrd.img-6.1.0-10":  {Data: []byte("d")},
	}

	actual, err := version.FindHighestIn(fsys, "kernels", "vmlinuz-", "")
	require.NoError(t, err)
	assert.Equal(t, "kernels/vmlinuz-6.10.0-1", actual)

	_, err = version.FindHighestIn(fsys, "kernels", "config-", "")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = version.FindHighestIn(fsys, "missing", "vmlinuz-", "")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
