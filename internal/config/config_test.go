// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"strings"
	"testing"

	"github.com/aibor/bootfs/internal/config"
	"github.com/aibor/bootfs/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := config.Load("testdata/bootfs.toml")
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", cfg.Server.Address)
	require.Len(t, cfg.Mounts, 2)

	synth := cfg.Mounts[0]
	assert.Equal(t, config.BackendSynthetic, synth.Backend)
	require.Len(t, synth.Rules, 3)
	assert.Equal(t, config.GeneratorMenu, synth.Rules[0].Generator)
	require.NotNil(t, synth.Rules[1].Latest)
	assert.Equal(t, "kernels", synth.Rules[1].Latest.Root)
	require.NotNil(t, synth.Rules[2].Overlay)
	assert.Len(t, synth.Rules[2].Overlay.Entries, 2)

	assert.Equal(t, config.Mount{
		Prefix:  "/",
		Backend: config.BackendCaseFold,
		Root:    "tftp",
	}, cfg.Mounts[1])

	assert.Equal(t, "menu.c32", cfg.Menu.UI)
	assert.Equal(t, 50, cfg.Menu.Timeout)
	require.Len(t, cfg.Menu.Labels, 3)
	assert.Equal(t, config.LabelNFSRoot, cfg.Menu.Labels[2].Type)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load("testdata/missing.toml")
	require.ErrorIs(t, err, &resolver.ConfigError{})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expErr error
	}{
		{
			name: "empty",
		},
		{
			name: "disk mount",
			input: `[[mount]]
prefix = "/"
backend = "disk"
root = "/srv/tftp"`,
		},
		{
			name: "unknown key",
			input: `[server]
adress = "10.0.0.1"`,
			expErr: config.ErrUnexpectedField,
		},
		{
			name:   "invalid toml",
			input:  `[server`,
			expErr: &resolver.ConfigError{},
		},
		{
			name: "unknown backend",
			input: `[[mount]]
prefix = "/"
backend = "ftp"`,
			expErr: config.ErrUnknownBackend,
		},
		{
			name: "missing prefix",
			input: `[[mount]]
backend = "disk"
root = "/srv/tftp"`,
			expErr: config.ErrMissingField,
		},
		{
			name: "disk without root",
			input: `[[mount]]
prefix = "/"
backend = "disk"`,
			expErr: config.ErrMissingField,
		},
		{
			name: "disk with rule",
			input: `[[mount]]
prefix = "/"
backend = "disk"
root = "/srv/tftp"

[[mount.rule]]
pattern = "^/x$"
generator = "menu"`,
			expErr: config.ErrUnexpectedField,
		},
		{
			name: "synthetic with root",
			input: `[[mount]]
prefix = "/"
backend = "synthetic"
root = "/srv/tftp"`,
			expErr: config.ErrUnexpectedField,
		},
		{
			name: "unknown generator",
			input: `[[mount]]
prefix = "/"
backend = "synthetic"

[[mount.rule]]
pattern = "^/x$"
generator = "random"`,
			expErr: config.ErrUnknownGenerator,
		},
		{
			name: "rule without pattern",
			input: `[[mount]]
prefix = "/"
backend = "synthetic"

[[mount.rule]]
generator = "menu"`,
			expErr: config.ErrMissingField,
		},
		{
			name: "latest without table",
			input: `[[mount]]
prefix = "/"
backend = "synthetic"

[[mount.rule]]
pattern = "^/x$"
generator = "latest"`,
			expErr: config.ErrMissingField,
		},
		{
			name: "menu with latest table",
			input: `[[mount]]
prefix = "/"
backend = "synthetic"

[[mount.rule]]
pattern = "^/x$"
generator = "menu"

[mount.rule.latest]
root = "/srv"`,
			expErr: config.ErrUnexpectedField,
		},
		{
			name: "overlay source without source root",
			input: `[[mount]]
prefix = "/"
backend = "synthetic"

[[mount.rule]]
pattern = "^/x$"
generator = "overlay"

[[mount.rule.overlay.entry]]
path = "/init"
source = "init"`,
			expErr: config.ErrMissingField,
		},
		{
			name: "overlay entry without type",
			input: `[[mount]]
prefix = "/"
backend = "synthetic"

[[mount.rule]]
pattern = "^/x$"
generator = "overlay"

[[mount.rule.overlay.entry]]
path = "/init"`,
			expErr: &resolver.ConfigError{},
		},
		{
			name: "unknown label type",
			input: `[[menu.label]]
type = "floppy"
name = "a"`,
			expErr: config.ErrUnknownLabelType,
		},
		{
			name: "label with foreign field",
			input: `[[menu.label]]
type = "local"
name = "a"
kernel = "vmlinuz"`,
			expErr: config.ErrUnexpectedField,
		},
		{
			name: "label missing kernel",
			input: `[[menu.label]]
type = "linux"
name = "a"
initrd = "initrd.img"`,
			expErr: &resolver.ConfigError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Decode(strings.NewReader(tt.input))
			if tt.expErr != nil {
				require.ErrorIs(t, err, tt.expErr)
				require.ErrorIs(t, err, &resolver.ConfigError{})

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, cfg)
		})
	}
}
