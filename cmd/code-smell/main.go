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
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/code-smell/failure"
)

const (
	success = 0
	failed  = 1
)

const distribution = "sawtooth-code_smell"

// version is set at build time.
var version = "UNKNOWN"

func main() {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) (code int) {

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fmt.Fprintf(stderr, "panic: %v\n%s", r, debug.Stack())
		code = failed
	}()

	// Signal catching for clean shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	env := environment{
		stdout: stdout,
		stderr: stderr,
		prompt: password,
	}

	err := env.execute(ctx, args)
	if ctx.Err() != nil {
		return success
	}

	return report(stderr, err)
}

// report prints the given error and returns the matching exit code. Unexpected
// errors are printed with their whole chain, one wrapped error per line.
func report(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return success
	case errors.Is(err, pflag.ErrHelp):
		return success
	case errors.As(err, &usageError{}):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return failed
	case errors.Is(err, failure.ErrClient):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return failed
	}

	fmt.Fprintf(stderr, "unexpected error: %v\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(stderr, "  caused by: %v\n", cause)
	}

	return failed
}
