// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/aibor/bootfs/internal/bootmenu"
)

// Label types.
const (
	LabelLocal     = "local"
	LabelChain     = "chain"
	LabelLinux     = "linux"
	LabelNFSRoot   = "nfsroot"
	LabelELF       = "elf"
	LabelSeparator = "separator"
)

// Menu configures the generated boot menu.
type Menu struct {
	UI      string  `toml:"ui"`
	Title   string  `toml:"title"`
	Timeout int     `toml:"timeout"`
	Labels  []Label `toml:"label"`
}

// Label is a single menu entry. Type selects which of the type specific
// fields are used.
type Label struct {
	Type        string `toml:"type"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Indent      int    `toml:"indent"`
	Password    string `toml:"password"`
	Help        string `toml:"help"`
	Default     bool   `toml:"default"`
	Disabled    bool   `toml:"disabled"`

	// chain
	Disk      string `toml:"disk"`
	Partition int    `toml:"partition"`

	// linux, nfsroot and elf
	Kernel string `toml:"kernel"`
	Initrd string `toml:"initrd"`
	Append string `toml:"append"`

	// nfsroot
	Server      string `toml:"server"`
	RamdiskSize int    `toml:"ramdisk_size"`
}

func (m *Menu) build() (*bootmenu.Menu, error) {
	menu := &bootmenu.Menu{
		UI:      m.UI,
		Title:   m.Title,
		Timeout: m.Timeout,
		Labels:  make([]bootmenu.Label, 0, len(m.Labels)),
	}

	for idx, label := range m.Labels {
		built, err := label.build()
		if err != nil {
			return nil, fmt.Errorf("label %d (%s): %w", idx, label.Name, err)
		}

		menu.Labels = append(menu.Labels, built)
	}

	err := menu.Validate()
	if err != nil {
		return nil, err
	}

	return menu, nil
}

func (l *Label) build() (bootmenu.Label, error) {
	opts := bootmenu.Options{
		Name:        l.Name,
		Description: l.Description,
		Indent:      l.Indent,
		Password:    l.Password,
		Help:        l.Help,
		Default:     l.Default,
		Disabled:    l.Disabled,
	}

	linux := bootmenu.Linux{
		Options: opts,
		Kernel:  l.Kernel,
		Initrd:  l.Initrd,
		Append:  l.Append,
	}

	switch l.Type {
	case LabelLocal:
		return &bootmenu.Local{Options: opts}, l.unexpected("disk", "kernel", "server")
	case LabelChain:
		return &bootmenu.Chain{
			Options:   opts,
			Disk:      l.Disk,
			Partition: l.Partition,
		}, l.unexpected("kernel", "server")
	case LabelLinux:
		return &linux, l.unexpected("disk", "server")
	case LabelNFSRoot:
		return &bootmenu.NFSRoot{
			Linux:       linux,
			Server:      l.Server,
			RamdiskSize: l.RamdiskSize,
		}, l.unexpected("disk")
	case LabelELF:
		return &bootmenu.ELF{
			Options: opts,
			Kernel:  l.Kernel,
			Append:  l.Append,
		}, l.unexpected("disk", "initrd", "server")
	case LabelSeparator:
		return &bootmenu.Separator{Options: opts}, l.unexpected("disk", "kernel", "server")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabelType, l.Type)
	}
}

// unexpected returns an error if any of the given type specific field groups
// is set.
func (l *Label) unexpected(groups ...string) error {
	for _, group := range groups {
		var set bool

		switch group {
		case "disk":
			set = l.Disk != "" || l.Partition != 0
		case "kernel":
			set = l.Kernel != "" || l.Initrd != "" || l.Append != ""
		case "initrd":
			set = l.Initrd != ""
		case "server":
			set = l.Server != "" || l.RamdiskSize != 0
		}

		if set {
			return fmt.Errorf("%w: %s for type %s", ErrUnexpectedField, group, l.Type)
		}
	}

	return nil
}
