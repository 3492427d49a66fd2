// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"log/slog"

	"github.com/aibor/bootfs/internal/config"
)

const serverVar = "server"

// menuVars returns the variables substituted in the boot menu.
//
// The configured address takes precedence over the address of the configured
// interface. If neither is set, no variables are returned.
func menuVars(server config.Server, logger *slog.Logger) (map[string]string, error) {
	address := server.Address

	if address == "" && server.Interface != "" {
		var err error

		address, err = interfaceAddress(server.Interface)
		if err != nil {
			return nil, err
		}

		logger.Debug("Using interface address for server",
			slog.String("interface", server.Interface),
			slog.String("address", address))
	}

	if address == "" {
		return nil, nil
	}

	return map[string]string{serverVar: address}, nil
}
