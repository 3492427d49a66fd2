// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/aibor/bootfs/internal/bootmenu"
	"github.com/aibor/bootfs/internal/diskfs"
	"github.com/aibor/bootfs/internal/generator"
	"github.com/aibor/bootfs/internal/resolver"
	"github.com/aibor/bootfs/internal/synthetic"
)

// Stack is an assembled [resolver.Resolver] with the directories it holds
// open. It must be closed after use.
type Stack struct {
	*resolver.Resolver

	roots map[string]*os.Root
}

// Close closes all opened root directories.
func (s *Stack) Close() error {
	var errs []error

	for _, root := range s.roots {
		errs = append(errs, root.Close())
	}

	s.roots = nil

	return errors.Join(errs...)
}

// openRoot opens the directory once, no matter how many mounts use it.
func (s *Stack) openRoot(dir string) (fs.FS, error) {
	if root, exists := s.roots[dir]; exists {
		return root.FS(), nil
	}

	root, err := diskfs.OpenRoot(dir)
	if err != nil {
		return nil, err
	}

	s.roots[dir] = root

	return root.FS(), nil
}

// Assemble builds the resolver stack the configuration describes. Mounts are
// added in configuration order.
//
// The vars are substituted in the menu for each "{key}". Directories are
// opened and must exist. On error, all already opened directories are
// closed.
func Assemble(cfg *Config, vars map[string]string, logger *slog.Logger) (*Stack, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	menu, err := cfg.Menu.build()
	if err != nil {
		return nil, &resolver.ConfigError{Subject: "menu", Err: err}
	}

	stack := &Stack{
		Resolver: resolver.New(logger),
		roots:    make(map[string]*os.Root),
	}

	for idx, mount := range cfg.Mounts {
		err := stack.addMount(mount, menu, vars, logger)
		if err != nil {
			_ = stack.Close()

			return nil, fmt.Errorf("mount %d (%s): %w", idx, mount.Prefix, err)
		}
	}

	return stack, nil
}

func (s *Stack) addMount(
	mount Mount,
	menu *bootmenu.Menu,
	vars map[string]string,
	logger *slog.Logger,
) error {
	backend, err := s.newBackend(mount, menu, vars, logger)
	if err != nil {
		return err
	}

	return s.AddMount(backend, mount.Prefix, mount.CaseSensitive)
}

func (s *Stack) newBackend(
	mount Mount,
	menu *bootmenu.Menu,
	vars map[string]string,
	logger *slog.Logger,
) (resolver.Backend, error) {
	switch mount.Backend {
	case BackendDisk:
		fsys, err := s.openRoot(mount.Root)
		if err != nil {
			return nil, &resolver.ConfigError{Subject: "root", Err: err}
		}

		return diskfs.New(fsys), nil
	case BackendCaseFold:
		fsys, err := s.openRoot(mount.Root)
		if err != nil {
			return nil, &resolver.ConfigError{Subject: "root", Err: err}
		}

		return diskfs.NewCaseFolding(fsys, logger), nil
	case BackendSynthetic:
		backend := synthetic.New(logger)

		for idx, rule := range mount.Rules {
			gen, err := s.newGenerator(rule, menu, vars)
			if err != nil {
				return nil, fmt.Errorf("rule %d: %w", idx, err)
			}

			err = backend.AddRule(rule.Pattern, gen)
			if err != nil {
				return nil, fmt.Errorf("rule %d: %w", idx, err)
			}
		}

		return backend, nil
	default:
		return nil, &resolver.ConfigError{
			Subject: "backend",
			Err:     fmt.Errorf("%w: %q", ErrUnknownBackend, mount.Backend),
		}
	}
}

func (s *Stack) newGenerator(
	rule Rule,
	menu *bootmenu.Menu,
	vars map[string]string,
) (synthetic.Generator, error) {
	switch rule.Generator {
	case GeneratorMenu:
		return generator.Menu(menu, vars), nil
	case GeneratorLatest:
		if rule.Latest == nil {
			return nil, &resolver.ConfigError{
				Subject: "latest",
				Err:     fmt.Errorf("%w: latest.root", ErrMissingField),
			}
		}

		fsys, err := s.openRoot(rule.Latest.Root)
		if err != nil {
			return nil, &resolver.ConfigError{Subject: "latest", Err: err}
		}

		dir := rule.Latest.Dir
		if dir == "" {
			dir = "."
		}

		return generator.Latest(generator.LatestSpec{
			FS:     fsys,
			Dir:    dir,
			Base:   rule.Latest.Base,
			Suffix: rule.Latest.Suffix,
		}), nil
	case GeneratorOverlay:
		if rule.Overlay == nil {
			return nil, &resolver.ConfigError{
				Subject: "overlay",
				Err:     fmt.Errorf("%w: overlay.entry", ErrMissingField),
			}
		}

		var source fs.FS

		if rule.Overlay.Source != "" {
			fsys, err := s.openRoot(rule.Overlay.Source)
			if err != nil {
				return nil, &resolver.ConfigError{Subject: "overlay", Err: err}
			}

			source = fsys
		}

		return generator.Overlay(rule.Overlay.overlayEntries(), source), nil
	default:
		return nil, &resolver.ConfigError{
			Subject: "generator",
			Err:     fmt.Errorf("%w: %q", ErrUnknownGenerator, rule.Generator),
		}
	}
}

func (o *Overlay) overlayEntries() []generator.OverlayEntry {
	entries := make([]generator.OverlayEntry, 0, len(o.Entries))

	for _, entry := range o.Entries {
		entries = append(entries, generator.OverlayEntry{
			Path:    entry.Path,
			Content: entry.Content,
			Source:  entry.Source,
			Target:  entry.Target,
			Dir:     entry.Dir,
			Mode:    fs.FileMode(entry.Mode).Perm(),
		})
	}

	return entries
}
