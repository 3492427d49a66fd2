// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package generator

import (
	"maps"
	"slices"
	"strings"

	"github.com/aibor/bootfs/internal/bootmenu"
	"github.com/aibor/bootfs/internal/resolver"
	"github.com/aibor/bootfs/internal/synthetic"
)

// Menu returns a [synthetic.Generator] that renders the given menu.
//
// Each "{key}" in the rendered menu is replaced with the value of key in vars.
func Menu(menu *bootmenu.Menu, vars map[string]string) synthetic.Generator {
	oldnew := make([]string, 0, 2*len(vars))
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		oldnew = append(oldnew, "{"+key+"}", vars[key])
	}

	replacer := strings.NewReplacer(oldnew...)

	return func(name string, _ synthetic.Match) (*resolver.File, error) {
		content := replacer.Replace(menu.String())
		return resolver.NewBytesFile(name, []byte(content)), nil
	}
}
