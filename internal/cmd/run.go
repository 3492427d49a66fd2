// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/aibor/bootfs/internal/config"
	"github.com/aibor/bootfs/internal/resolver"
	"golang.org/x/sync/errgroup"
)

const (
	exitCodeError    = -1
	exitCodeNotFound = 1
	exitCodeUsage    = 2
)

// Set on build.
var version = "dev" //nolint:gochecknoglobals

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newStack(path string, logger *slog.Logger) (*config.Stack, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	vars, err := menuVars(cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("menu vars: %w", err)
	}

	stack, err := config.Assemble(cfg, vars, logger)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	return stack, nil
}

// resolvePaths resolves all paths concurrently and prints one line per path
// in the given order.
func resolvePaths(
	ctx context.Context,
	res *resolver.Resolver,
	paths []string,
	jobs int,
	output io.Writer,
) error {
	lines := make([]string, len(paths))
	found := make([]bool, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for idx, path := range paths {
		group.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err
			}

			file, err := res.Resolve(path)
			if errors.Is(err, resolver.ErrNotFound) {
				lines[idx] = path + ": not found"
				return nil
			} else if err != nil {
				return err
			}

			_ = file.Close()

			lines[idx] = fmt.Sprintf("%s -> %s (%d bytes)", path, file.Path, file.Size)
			found[idx] = true

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return err
	}

	missing := 0

	for idx, line := range lines {
		fmt.Fprintln(output, line)

		if !found[idx] {
			missing++
		}
	}

	if missing > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPathsNotFound, missing, len(paths))
	}

	return nil
}

// catPath writes the content path resolves to to output.
func catPath(res *resolver.Resolver, path string, output io.Writer) error {
	file, err := res.Resolve(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(output, file)
	if err != nil {
		return fmt.Errorf("copy %s: %w", file.Path, err)
	}

	return nil
}

func run(ctx context.Context, flags *flags, cfg IO, logger *slog.Logger) error {
	stack, err := newStack(flags.ConfigPath, logger)
	if err != nil {
		return err
	}

	defer func() {
		err := stack.Close()
		if err != nil {
			logger.Error("Failed to close roots", slog.Any("error", err))
		}
	}()

	switch flags.Command {
	case commandCheck:
		fmt.Fprintf(cfg.Stdout, "%s: %d mounts\n", flags.ConfigPath, len(stack.Mounts()))
		return nil
	case commandResolve:
		return resolvePaths(ctx, stack.Resolver, flags.Paths, flags.Jobs, cfg.Stdout)
	case commandCat:
		return catPath(stack.Resolver, flags.Paths[0], cfg.Stdout)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, flags.Command)
	}
}

func handleParseArgsError(err error, logger *slog.Logger) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		logger.Error(err.Error())
	}

	return exitCodeUsage
}

func handleRunError(err error, logger *slog.Logger) int {
	// Missing paths are already reported on stdout.
	if errors.Is(err, ErrPathsNotFound) {
		return exitCodeNotFound
	}

	logger.Error(err.Error())

	if errors.Is(err, resolver.ErrNotFound) && !errors.Is(err, &resolver.ConfigError{}) {
		return exitCodeNotFound
	}

	return exitCodeError
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err, newLogger(cfg.Stderr, false))
	}

	logger := newLogger(cfg.Stderr, flags.Debug)

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			logger.Error(err.Error())
			return exitCodeError
		}

		fmt.Fprintf(cfg.Stdout, "%s: %s (%s)\n", name, version, buildInfo.Main.Version)

		return 0
	}

	err = run(ctx, flags, cfg, logger)
	if err != nil {
		return handleRunError(err, logger)
	}

	return 0
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
