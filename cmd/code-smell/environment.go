// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	commandCreate  = "create"
	commandDefault = "default"
)

type usageError struct {
	message string
}

func (u usageError) Error() string {
	return u.message
}

// environment holds the process resources the commands interact with.
type environment struct {
	stdout io.Writer
	stderr io.Writer
	prompt func(label string) (string, error)
}

func (e environment) execute(ctx context.Context, args []string) error {

	// Global flags stop at the first positional argument, which is the command.
	var (
		flagVerbose int
		flagVersion bool
	)

	flags := pflag.NewFlagSet(distribution, pflag.ContinueOnError)
	flags.SetOutput(e.stderr)
	flags.SetInterspersed(false)
	flags.CountVarP(&flagVerbose, "verbose", "v", "enable more verbose output")
	flags.BoolVarP(&flagVersion, "version", "V", false, "display version information")
	flags.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: code-smell [-v...] [-V] <%s|%s> [flags]\n\n", commandCreate, commandDefault)
		fmt.Fprintf(e.stderr, "Process and manage code smell transactions.\n\n")
		fmt.Fprintf(e.stderr, "Subcommands:\n")
		fmt.Fprintf(e.stderr, "  %-10s send a transaction to create a code smell\n", commandCreate)
		fmt.Fprintf(e.stderr, "  %-10s send a transaction to load the default configuration\n\n", commandDefault)
		fmt.Fprintf(e.stderr, "Flags:\n%s", flags.FlagUsages())
	}

	err := parse(flags, args)
	if err != nil {
		return err
	}

	if flagVersion {
		fmt.Fprintf(e.stdout, "%s (Hyperledger Sawtooth) version %s\n", distribution, version)
		return nil
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return usageError{message: "missing subcommand"}
	}

	command, rest := flags.Arg(0), flags.Args()[1:]
	switch command {
	case commandCreate:
		return e.create(ctx, flagVerbose, rest)
	case commandDefault:
		return e.defaults(ctx, flagVerbose, rest)
	default:
		flags.Usage()
		return usageError{message: fmt.Sprintf("invalid command: %s", command)}
	}
}

func parse(flags *pflag.FlagSet, args []string) error {
	err := flags.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return err
	}
	if err != nil {
		return usageError{message: err.Error()}
	}
	return nil
}

func (e environment) logger(verbose int) zerolog.Logger {

	level := zerolog.WarnLevel
	switch {
	case verbose == 1:
		level = zerolog.InfoLevel
	case verbose >= 2:
		level = zerolog.DebugLevel
	}

	noColor := true
	file, ok := e.stderr.(*os.File)
	if ok {
		noColor = !term.IsTerminal(int(file.Fd()))
	}

	output := zerolog.ConsoleWriter{Out: e.stderr, TimeFormat: "15:04:05", NoColor: noColor}
	log := zerolog.New(output).With().Timestamp().Logger().Level(level)

	return log
}

// password reads a password from the terminal without echoing it.
func password(label string) (string, error) {

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("standard input is not a terminal")
	}

	fmt.Fprint(os.Stderr, label)
	data, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}

	return string(data), nil
}
