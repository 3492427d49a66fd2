// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package synthetic

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"slices"

	"github.com/aibor/bootfs/internal/resolver"
)

var (
	// ErrInvalidPattern is returned if a rule's pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNilGenerator is returned if a rule is added without generator.
	ErrNilGenerator = errors.New("generator is nil")
)

// Generator produces the file for a path that matched a rule.
//
// The name is the clean absolute path. If the generator has no file for the
// path, it returns an error matching [resolver.ErrNotFound] or a nil file.
// Generators must not modify shared state, as they may be called
// concurrently.
type Generator func(name string, match Match) (*resolver.File, error)

// Rule binds a [Generator] to a pattern.
type Rule struct {
	Pattern   *regexp.Regexp
	Generator Generator
}

var _ resolver.Backend = (*Backend)(nil)

// Backend produces files with the [Generator] of the first matching [Rule].
//
// Rules must be added with [Backend.AddRule] before the backend is used. Once
// assembled, it is safe for concurrent use.
type Backend struct {
	rules  []Rule
	logger *slog.Logger
}

// New creates a new [Backend] without rules. If logger is nil, nothing is
// logged.
func New(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Backend{
		logger: logger,
	}
}

// AddRule adds a rule with the given pattern. Rules are tried in the order
// they are added.
//
// It returns a [resolver.ConfigError] if the pattern does not compile or the
// generator is nil.
func (b *Backend) AddRule(pattern string, generator Generator) error {
	if generator == nil {
		return &resolver.ConfigError{Subject: "rule " + pattern, Err: ErrNilGenerator}
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return &resolver.ConfigError{
			Subject: "rule " + pattern,
			Err:     fmt.Errorf("%w: %w", ErrInvalidPattern, err),
		}
	}

	b.rules = append(b.rules, Rule{
		Pattern:   regex,
		Generator: generator,
	})

	return nil
}

// Rules returns a copy of the rules in the order they are tried.
func (b *Backend) Rules() []Rule {
	return slices.Clone(b.rules)
}

// Resolve implements [resolver.Backend].
//
// A rule whose generator has no file does not end the search. Any other
// error returned by a generator does.
func (b *Backend) Resolve(name string) (*resolver.File, error) {
	name = path.Clean("/" + name)

	for _, rule := range b.rules {
		b.logger.Debug("Matching rule",
			slog.String("path", name),
			slog.String("pattern", rule.Pattern.String()))

		groups := rule.Pattern.FindStringSubmatch(name)
		if groups == nil {
			continue
		}

		match := Match{
			groups: groups,
			names:  rule.Pattern.SubexpNames(),
		}

		file, err := rule.Generator(name, match)

		switch {
		case err == nil && file != nil:
			return file, nil
		case file != nil:
			_ = file.Close()
		}

		if err != nil && !errors.Is(err, resolver.ErrNotFound) {
			return nil, fmt.Errorf("generate %s: %w", name, err)
		}

		b.logger.Info("Matching rule produced no file",
			slog.String("path", name),
			slog.String("pattern", rule.Pattern.String()))
	}

	return nil, &resolver.PathError{Op: "generate", Path: name, Err: resolver.ErrNotFound}
}
