// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootmenu

import (
	"fmt"
	"strconv"
	"strings"
)

// Menu is a PXELINUX configuration file with a list of labels.
type Menu struct {
	// UI is the menu module, like "menu.c32" or "vesamenu.c32". If empty, no
	// UI directive is written.
	UI string

	// Title is shown on top of the menu.
	Title string

	// Timeout in tenth of a second after which the default label is booted.
	// 0 waits forever.
	Timeout int

	Labels []Label
}

// Validate checks all labels and that label names are unique and at most one
// label is the default.
func (m *Menu) Validate() error {
	names := make(map[string]struct{}, len(m.Labels))
	hasDefault := false

	for idx, label := range m.Labels {
		err := label.validate()
		if err != nil {
			return fmt.Errorf("label %d: %w", idx, err)
		}

		opts := label.options()

		if opts.Name != "" {
			if _, exists := names[opts.Name]; exists {
				return fmt.Errorf("%w: %s", ErrDuplicateLabel, opts.Name)
			}

			names[opts.Name] = struct{}{}
		}

		if opts.Default && !opts.Disabled {
			if hasDefault {
				return fmt.Errorf("%w: %s", ErrMultipleDefaults, opts.Name)
			}

			hasDefault = true
		}
	}

	return nil
}

// String renders the menu.
func (m *Menu) String() string {
	var b strings.Builder

	if m.UI != "" {
		b.WriteString("UI " + m.UI + "\n")
		b.WriteString("PROMPT 0\n")
	}

	if m.Title != "" {
		b.WriteString("MENU TITLE " + m.Title + "\n")
	}

	if m.Timeout > 0 {
		b.WriteString("TIMEOUT " + strconv.Itoa(m.Timeout) + "\n")
	}

	if b.Len() > 0 {
		b.WriteString("\n")
	}

	for _, label := range m.Labels {
		label.writeTo(&b)
	}

	return b.String()
}
