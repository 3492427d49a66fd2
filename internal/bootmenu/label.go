// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootmenu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	indent    = "        "
	lineWidth = 70

	// DefaultRamdiskSize is the ramdisk size in KiB used for [NFSRoot] labels
	// if none is set.
	DefaultRamdiskSize = 14332
)

// Label is a single entry of a [Menu].
type Label interface {
	options() Options
	validate() error
	writeTo(b *strings.Builder)
}

// Options are the settings all label types share.
type Options struct {
	// Name is the label's identifier, used with "LABEL".
	Name string

	// Description is the text shown in the menu. A "^" marks the hotkey.
	Description string

	// Indent is the number of columns the entry is indented in the menu.
	Indent int

	// Password protects the entry if set.
	Password string

	// Help is shown while the entry is selected. It is word wrapped.
	Help string

	// Default makes the entry the one selected initially.
	Default bool

	// Disabled makes the entry unselectable.
	Disabled bool
}

func (o Options) options() Options { return o }

func (o Options) validate() error {
	if o.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}

	return nil
}

// writeTo writes the label with the given body. The body holds the
// directives specific to the label type.
func (o Options) writeTo(b *strings.Builder, body ...string) {
	b.WriteString("LABEL " + o.Name + "\n")

	if o.Description != "" {
		writeLine(b, "MENU LABEL "+o.Description)
	}

	if o.Indent != 0 {
		writeLine(b, "MENU INDENT "+strconv.Itoa(o.Indent))
	}

	if o.Password != "" {
		writeLine(b, "MENU PASSWD "+o.Password)
	}

	if o.Help != "" {
		writeLine(b, "TEXT HELP")
		b.WriteString(wrapHelp(o.Help))
		writeLine(b, "ENDTEXT")
	}

	for _, line := range body {
		writeLine(b, line)
	}

	if o.Disabled {
		writeLine(b, "MENU DISABLE")
	} else if o.Default {
		writeLine(b, "MENU DEFAULT")
	}

	b.WriteString("\n")
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(indent + line + "\n")
}

// wrapHelp wraps text so that each indented line fits into [lineWidth]
// columns. Whitespace is collapsed.
func wrapHelp(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	wrapped := ansi.Wordwrap(text, lineWidth-len(indent), "")

	var b strings.Builder

	for line := range strings.SplitSeq(wrapped, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		writeLine(&b, line)
	}

	return b.String()
}

// Local boots from the local disk.
type Local struct {
	Options
}

func (l *Local) writeTo(b *strings.Builder) {
	l.Options.writeTo(b, "localboot 0")
}

// Chain chain-loads the boot sector of a local partition.
type Chain struct {
	Options

	// Disk is the disk to boot from, like "hd0".
	Disk string

	// Partition is the partition number on the disk.
	Partition int
}

func (c *Chain) validate() error {
	if c.Disk == "" {
		return fmt.Errorf("%w: disk", ErrMissingField)
	}

	return c.Options.validate()
}

func (c *Chain) writeTo(b *strings.Builder) {
	c.Options.writeTo(b,
		"KERNEL chain.c32",
		fmt.Sprintf("APPEND %s %d", c.Disk, c.Partition),
	)
}

// Linux boots a Linux kernel with an initrd.
type Linux struct {
	Options

	Kernel string
	Initrd string

	// Append is the kernel command line.
	Append string
}

func (l *Linux) validate() error {
	if l.Kernel == "" {
		return fmt.Errorf("%w: kernel", ErrMissingField)
	}

	if l.Initrd == "" {
		return fmt.Errorf("%w: initrd", ErrMissingField)
	}

	return l.Options.validate()
}

func (l *Linux) writeTo(b *strings.Builder) {
	l.Options.writeTo(b, l.body(l.Append)...)
}

func (l *Linux) body(cmdline string) []string {
	return []string{
		"KERNEL " + l.Kernel,
		strings.TrimRight("APPEND initrd="+l.Initrd+" "+cmdline, " "),
	}
}

// NFSRoot boots a Linux kernel with its root file system on NFS.
type NFSRoot struct {
	Linux

	// Server is the NFS root, like "10.0.0.1:/srv/nfs/root,v3,tcp".
	Server string

	// RamdiskSize in KiB. [DefaultRamdiskSize] is used if 0.
	RamdiskSize int
}

func (n *NFSRoot) validate() error {
	if n.Server == "" {
		return fmt.Errorf("%w: server", ErrMissingField)
	}

	return n.Linux.validate()
}

func (n *NFSRoot) writeTo(b *strings.Builder) {
	ramdiskSize := n.RamdiskSize
	if ramdiskSize == 0 {
		ramdiskSize = DefaultRamdiskSize
	}

	cmdline := fmt.Sprintf("ramdisk_size=%d root=/dev/nfs nfsroot=%s ip=dhcp %s",
		ramdiskSize, n.Server, n.Append)

	n.Options.writeTo(b, n.body(cmdline)...)
}

// ELF boots a plain ELF or COMBOOT image.
type ELF struct {
	Options

	Kernel string

	// Append is optional.
	Append string
}

func (e *ELF) validate() error {
	if e.Kernel == "" {
		return fmt.Errorf("%w: kernel", ErrMissingField)
	}

	return e.Options.validate()
}

func (e *ELF) writeTo(b *strings.Builder) {
	body := []string{"KERNEL " + e.Kernel}
	if e.Append != "" {
		body = append(body, "APPEND "+e.Append)
	}

	e.Options.writeTo(b, body...)
}

// Separator separates groups of entries. It is always disabled and its name
// may be empty.
type Separator struct {
	Options
}

func (*Separator) validate() error {
	return nil
}

func (s *Separator) writeTo(b *strings.Builder) {
	b.WriteString("MENU SEPARATOR\n\n")

	opts := s.Options
	opts.Disabled = true
	opts.writeTo(b)
}
