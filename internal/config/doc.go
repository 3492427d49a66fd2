// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the TOML configuration of the boot file server and
// assembles the [resolver.Resolver] stack from it.
//
// Unknown keys are rejected. Each backend, generator and label type has its
// own table with the fields it needs.
package config
