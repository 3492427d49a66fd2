// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const (
	name = "bootfs"

	configDefault = "bootfs.toml"

	jobsDefault = 4
	jobsMin     = 1
	jobsMax     = 64

	usageWidth = 80

	usageMessage = `Usage of 'bootfs':
    bootfs [flags...] command [paths...]

Commands:
    check           load the configuration and assemble the resolver stack
    resolve PATH... resolve paths and print the file each one resolves to
    cat PATH        write the content PATH resolves to to stdout

Flags:
`
)

// Commands.
const (
	commandCheck   = "check"
	commandResolve = "resolve"
	commandCat     = "cat"
)

type flags struct {
	ConfigPath string
	Jobs       int
	Debug      bool
	Version    bool

	Command string
	Paths   []string
}

func newFlagSet(flags *flags, output io.Writer) *pflag.FlagSet {
	fsName := name + " [flags...] command [paths...]"
	flagSet := pflag.NewFlagSet(fsName, pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SetInterspersed(false)

	flagSet.Usage = func() {
		fmt.Fprint(output, usageMessage)
		fmt.Fprint(output, flagSet.FlagUsagesWrapped(usageWidth))
	}

	flagSet.StringVarP(
		&flags.ConfigPath,
		"config",
		"c",
		flags.ConfigPath,
		"path of the TOML configuration file",
	)

	flagSet.IntVar(
		&flags.Jobs,
		"jobs",
		flags.Jobs,
		fmt.Sprintf("maximum number of concurrent resolutions (%d-%d)", jobsMin, jobsMax),
	)

	flagSet.BoolVar(
		&flags.Debug,
		"debug",
		flags.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&flags.Version,
		"version",
		flags.Version,
		"show version and exit",
	)

	return flagSet
}

// fail prints the error followed by the usage message like [pflag] does for
// unknown flags.
func fail(flagSet *pflag.FlagSet, msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(flagSet.Output(), err.Error())

	flagSet.Usage()

	return err
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{
		ConfigPath: configDefault,
		Jobs:       jobsDefault,
	}

	flagSet := newFlagSet(flags, output)

	// First element is the program name.
	err := flagSet.Parse(args[1:])
	if err != nil {
		if errors.Is(err, ErrHelp) {
			return nil, err
		}

		return nil, fail(flagSet, "flag parse", err)
	}

	// With version flag, just print the version and exit.
	if flags.Version {
		return flags, nil
	}

	if flags.Jobs < jobsMin || flags.Jobs > jobsMax {
		return nil, fail(flagSet, fmt.Sprintf("jobs must be within %d-%d", jobsMin, jobsMax), nil)
	}

	positionalArgs := flagSet.Args()
	if len(positionalArgs) < 1 {
		return nil, fail(flagSet, "no command given", nil)
	}

	flags.Command = positionalArgs[0]
	flags.Paths = positionalArgs[1:]

	switch flags.Command {
	case commandCheck:
		if len(flags.Paths) > 0 {
			return nil, fail(flagSet, "check takes no paths", nil)
		}
	case commandResolve:
		if len(flags.Paths) < 1 {
			return nil, fail(flagSet, "no path given", nil)
		}
	case commandCat:
		if len(flags.Paths) != 1 {
			return nil, fail(flagSet, "cat takes exactly one path", nil)
		}
	default:
		return nil, fail(flagSet, "command", fmt.Errorf("%w: %s", ErrUnknownCommand, flags.Command))
	}

	return flags, nil
}
