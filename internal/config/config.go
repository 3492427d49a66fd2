// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aibor/bootfs/internal/resolver"
	"github.com/pelletier/go-toml/v2"
)

// Backend types.
const (
	BackendDisk      = "disk"
	BackendCaseFold  = "casefold"
	BackendSynthetic = "synthetic"
)

// Generator types.
const (
	GeneratorMenu    = "menu"
	GeneratorLatest  = "latest"
	GeneratorOverlay = "overlay"
)

// Config is the top level configuration.
type Config struct {
	Server Server  `toml:"server"`
	Mounts []Mount `toml:"mount"`
	Menu   Menu    `toml:"menu"`
}

// Server holds settings of the serving host.
type Server struct {
	// Interface whose first IPv4 address is used for "{server}" in the menu.
	Interface string `toml:"interface"`

	// Address used for "{server}" in the menu. Takes precedence over
	// Interface.
	Address string `toml:"address"`
}

// Mount is a single mount of the resolver stack.
type Mount struct {
	Prefix        string `toml:"prefix"`
	Backend       string `toml:"backend"`
	CaseSensitive bool   `toml:"case_sensitive"`

	// Root directory for disk and casefold backends.
	Root string `toml:"root"`

	// Rules for synthetic backends.
	Rules []Rule `toml:"rule"`
}

// Rule is a single rule of a synthetic backend.
type Rule struct {
	Pattern   string `toml:"pattern"`
	Generator string `toml:"generator"`

	// Latest is required for latest generators.
	Latest *Latest `toml:"latest"`

	// Overlay is required for overlay generators.
	Overlay *Overlay `toml:"overlay"`
}

// Latest configures a latest generator.
type Latest struct {
	// Root directory on disk.
	Root string `toml:"root"`

	// Dir within Root that is searched. Defaults to Root itself.
	Dir string `toml:"dir"`

	Base   string `toml:"base"`
	Suffix string `toml:"suffix"`
}

// Overlay configures an overlay generator.
type Overlay struct {
	// Source root directory on disk for entries with a source.
	Source  string         `toml:"source"`
	Entries []OverlayEntry `toml:"entry"`
}

// OverlayEntry is a single entry of an overlay archive.
type OverlayEntry struct {
	Path    string `toml:"path"`
	Content string `toml:"content"`
	Source  string `toml:"source"`
	Target  string `toml:"target"`
	Dir     bool   `toml:"dir"`
	Mode    uint32 `toml:"mode"`
}

// Load reads the configuration from the file at the given path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &resolver.ConfigError{Subject: "load", Err: err}
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads the configuration from r and validates it.
//
// It returns a [resolver.ConfigError] if the input is not valid TOML, has
// unknown keys or fails validation.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config

	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, &resolver.ConfigError{
				Subject: "decode",
				Err:     fmt.Errorf("%w\n%s", ErrUnexpectedField, strictErr.String()),
			}
		}

		return nil, &resolver.ConfigError{Subject: "decode", Err: err}
	}

	err = cfg.Validate()
	if err != nil {
		return nil, &resolver.ConfigError{Subject: "validate", Err: err}
	}

	return &cfg, nil
}

// Validate checks the configuration for missing and misplaced fields.
func (c *Config) Validate() error {
	for idx, mount := range c.Mounts {
		err := mount.validate()
		if err != nil {
			return fmt.Errorf("mount %d (%s): %w", idx, mount.Prefix, err)
		}
	}

	_, err := c.Menu.build()
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	return nil
}

func (m *Mount) validate() error {
	if m.Prefix == "" {
		return fmt.Errorf("%w: prefix", ErrMissingField)
	}

	switch m.Backend {
	case BackendDisk, BackendCaseFold:
		if m.Root == "" {
			return fmt.Errorf("%w: root", ErrMissingField)
		}

		if len(m.Rules) > 0 {
			return fmt.Errorf("%w: rule", ErrUnexpectedField)
		}
	case BackendSynthetic:
		if m.Root != "" {
			return fmt.Errorf("%w: root", ErrUnexpectedField)
		}

		for idx, rule := range m.Rules {
			err := rule.validate()
			if err != nil {
				return fmt.Errorf("rule %d: %w", idx, err)
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, m.Backend)
	}

	return nil
}

func (r *Rule) validate() error {
	if r.Pattern == "" {
		return fmt.Errorf("%w: pattern", ErrMissingField)
	}

	switch r.Generator {
	case GeneratorMenu:
		if r.Latest != nil {
			return fmt.Errorf("%w: latest", ErrUnexpectedField)
		}

		if r.Overlay != nil {
			return fmt.Errorf("%w: overlay", ErrUnexpectedField)
		}
	case GeneratorLatest:
		if r.Overlay != nil {
			return fmt.Errorf("%w: overlay", ErrUnexpectedField)
		}

		if r.Latest == nil || r.Latest.Root == "" {
			return fmt.Errorf("%w: latest.root", ErrMissingField)
		}
	case GeneratorOverlay:
		if r.Latest != nil {
			return fmt.Errorf("%w: latest", ErrUnexpectedField)
		}

		if r.Overlay == nil || len(r.Overlay.Entries) == 0 {
			return fmt.Errorf("%w: overlay.entry", ErrMissingField)
		}

		for idx, entry := range r.Overlay.overlayEntries() {
			err := entry.Validate()
			if err != nil {
				return fmt.Errorf("overlay entry %d: %w", idx, err)
			}

			if entry.Source != "" && r.Overlay.Source == "" {
				return fmt.Errorf("overlay entry %d: %w: overlay.source", idx, ErrMissingField)
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGenerator, r.Generator)
	}

	return nil
}
