// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package generator_test

import (
	"io"
	"testing"

	"github.com/aibor/bootfs/internal/bootmenu"
	"github.com/aibor/bootfs/internal/generator"
	"github.com/aibor/bootfs/internal/resolver"
	"github.com/aibor/bootfs/internal/synthetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, file *resolver.File) string {
	t.Helper()

	data, err := io.ReadAll(file)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	return string(data)
}

func TestMenu(t *testing.T) {
	menu := &bootmenu.Menu{Labels: []bootmenu.Label{
		&bootmenu.NFSRoot{
			Linux: bootmenu.Linux{
				Options: bootmenu.Options{Name: "linux"},
				Kernel:  "vmlinuz-current",
				Initrd:  "initrd.img-current",
			},
			Server:      "{server}:/srv/nfs/{client}",
			RamdiskSize: 4096,
		},
	}}

	backend := synthetic.New(nil)
	require.NoError(t, backend.AddRule(`^/pxelinux\.cfg/default$`, generator.Menu(menu, map[string]string{
		"server": "10.0.0.1",
		"client": "test",
	})))

	file, err := backend.Resolve("/pxelinux.cfg/default")
	require.NoError(t, err)
	assert.Equal(t, "/pxelinux.cfg/default", file.Path)

	expected := "LABEL linux\n" +
		"        KERNEL vmlinuz-current\n" +
		"        APPEND initrd=initrd.img-current ramdisk_size=4096 " +
		"root=/dev/nfs nfsroot=10.0.0.1:/srv/nfs/test ip=dhcp\n\n"

	assert.Equal(t, int64(len(expected)), file.Size)
	assert.Equal(t, expected, readAll(t, file))
}
