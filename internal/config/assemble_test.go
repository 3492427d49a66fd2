// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/bootfs/internal/config"
	"github.com/aibor/bootfs/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func resolveString(t *testing.T, stack *config.Stack, name string) (string, string) {
	t.Helper()

	file, err := stack.Resolve(name)
	require.NoError(t, err)

	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)

	return file.Path, string(content)
}

func TestAssemble(t *testing.T) {
	dir := t.TempDir()
	kernels := filepath.Join(dir, "kernels")
	tftp := filepath.Join(dir, "tftp")

	writeFiles(t, kernels, map[string]string{
		"vmlinuz-6.1.0-9-amd64":  "old",
		"vmlinuz-6.1.0-13-amd64": "new",
	})
	writeFiles(t, tftp, map[string]string{
		"Boot/PXELinux.0": "pxelinux",
	})

	cfg := &config.Config{
		Mounts: []config.Mount{
			{
				Prefix:  "/",
				Backend: config.BackendSynthetic,
				Rules: []config.Rule{
					{
						Pattern:   `^/pxelinux\.cfg/default$`,
						Generator: config.GeneratorMenu,
					},
					{
						Pattern:   `^/boot/(vmlinuz-)latest$`,
						Generator: config.GeneratorLatest,
						Latest:    &config.Latest{Root: kernels, Suffix: "-amd64"},
					},
				},
			},
			{
				Prefix:  "/",
				Backend: config.BackendCaseFold,
				Root:    tftp,
			},
			{
				Prefix:        "/exact/",
				Backend:       config.BackendDisk,
				Root:          tftp,
				CaseSensitive: true,
			},
		},
		Menu: config.Menu{
			Labels: []config.Label{
				{
					Type:   config.LabelNFSRoot,
					Name:   "nfs",
					Kernel: "/boot/vmlinuz-latest",
					Initrd: "/boot/initrd.img",
					Server: "{server}:/srv/nfs",
				},
			},
		},
	}

	stack, err := config.Assemble(cfg, map[string]string{"server": "10.0.0.1"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, stack.Close()) })

	assert.Len(t, stack.Mounts(), 3)

	path, content := resolveString(t, stack, "/pxelinux.cfg/default")
	assert.Equal(t, "/pxelinux.cfg/default", path)
	assert.Contains(t, content, "nfsroot=10.0.0.1:/srv/nfs ")

	path, content = resolveString(t, stack, "/boot/vmlinuz-latest")
	assert.Equal(t, "/vmlinuz-6.1.0-13-amd64", path)
	assert.Equal(t, "new", content)

	path, content = resolveString(t, stack, `\boot\pxelinux.0`)
	assert.Equal(t, "/Boot/PXELinux.0", path)
	assert.Equal(t, "pxelinux", content)

	path, content = resolveString(t, stack, "/exact/Boot/PXELinux.0")
	assert.Equal(t, "/Boot/PXELinux.0", path)
	assert.Equal(t, "pxelinux", content)

	_, err = stack.Resolve("/exact/boot/pxelinux.0")
	require.ErrorIs(t, err, resolver.ErrNotFound)

	_, err = stack.Resolve("/nothing")
	require.ErrorIs(t, err, resolver.ErrNotFound)
}

func TestAssemble_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name   string
		cfg    config.Config
		expErr error
	}{
		{
			name: "missing root",
			cfg: config.Config{
				Mounts: []config.Mount{
					{Prefix: "/", Backend: config.BackendDisk, Root: missing},
				},
			},
			expErr: os.ErrNotExist,
		},
		{
			name: "missing latest root",
			cfg: config.Config{
				Mounts: []config.Mount{
					{
						Prefix:  "/",
						Backend: config.BackendSynthetic,
						Rules: []config.Rule{
							{
								Pattern:   "^/x$",
								Generator: config.GeneratorLatest,
								Latest:    &config.Latest{Root: missing},
							},
						},
					},
				},
			},
			expErr: os.ErrNotExist,
		},
		{
			name: "invalid prefix",
			cfg: config.Config{
				Mounts: []config.Mount{
					{Prefix: "boot", Backend: config.BackendSynthetic},
				},
			},
			expErr: resolver.ErrInvalidPrefix,
		},
		{
			name: "invalid pattern",
			cfg: config.Config{
				Mounts: []config.Mount{
					{
						Prefix:  "/",
						Backend: config.BackendSynthetic,
						Rules: []config.Rule{
							{Pattern: "^/(x$", Generator: config.GeneratorMenu},
						},
					},
				},
			},
			expErr: &resolver.ConfigError{},
		},
		{
			name: "unknown backend",
			cfg: config.Config{
				Mounts: []config.Mount{
					{Prefix: "/", Backend: "tape"},
				},
			},
			expErr: config.ErrUnknownBackend,
		},
		{
			name: "invalid menu",
			cfg: config.Config{
				Menu: config.Menu{
					Labels: []config.Label{{Type: config.LabelLocal}},
				},
			},
			expErr: &resolver.ConfigError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack, err := config.Assemble(&tt.cfg, nil, nil)
			require.ErrorIs(t, err, tt.expErr)
			assert.Nil(t, stack)
		})
	}
}
