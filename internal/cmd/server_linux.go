// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// interfaceAddress returns the first IPv4 address of the named interface.
func interfaceAddress(name string) (string, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return "", fmt.Errorf("get interface %s: %w", name, err)
	}

	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return "", fmt.Errorf("list addresses of %s: %w", name, err)
	}

	for _, addr := range addrs {
		if addr.IPNet != nil {
			return addr.IP.String(), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoInterfaceAddress, name)
}
