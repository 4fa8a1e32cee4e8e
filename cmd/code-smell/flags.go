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
	"fmt"
	"math"
	"os"
	"os/user"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/optakt/code-smell/failure"
	"github.com/optakt/code-smell/service/rest"
	"github.com/optakt/code-smell/signing"
)

// connection holds the flags shared by all subcommands.
type connection struct {
	verbose      int
	url          string
	username     string
	keyDir       string
	authUser     string
	authPassword string
	noValidation bool
	trace        bool
	wait         int
}

func (c *connection) register(flags *pflag.FlagSet) {
	flags.CountVarP(&c.verbose, "verbose", "v", "enable more verbose output")
	flags.StringVar(&c.url, "url", rest.DefaultURL, "specify URL of REST API")
	flags.StringVar(&c.username, "username", "", "identify name of user's private key file")
	flags.StringVar(&c.keyDir, "key-dir", "", "identify directory of user's private key file")
	flags.StringVar(&c.authUser, "auth-user", "", "specify username for authentication if REST API is using Basic Auth")
	flags.StringVar(&c.authPassword, "auth-password", "", "specify password for authentication if REST API is using Basic Auth")
	flags.BoolVar(&c.noValidation, "disable-client-validation", false, "disable client validation")
	flags.BoolVar(&c.trace, "trace", false, "request the validator to trace the batch")
	flags.IntVar(&c.wait, "wait", 0, "set time, in seconds, to wait for code smell to commit")

	// A bare --wait waits as long as the REST API allows.
	flags.Lookup("wait").NoOptDefVal = strconv.Itoa(math.MaxInt32)
}

// leftover rejects positional arguments. A bare --wait takes no value, so
// "--wait 5" leaves the 5 behind.
func leftover(flags *pflag.FlagSet) error {
	if flags.NArg() == 0 {
		return nil
	}
	return usageError{message: fmt.Sprintf("unexpected argument %s, use --wait=N to set a wait time", flags.Arg(0))}
}

func (c *connection) timeout() time.Duration {
	if c.wait <= 0 {
		return 0
	}
	return time.Duration(c.wait) * time.Second
}

func (c *connection) signer() (*signing.Signer, error) {

	username := c.username
	if username == "" {
		current, err := user.Current()
		if err != nil {
			return nil, failure.KeyLoad{
				Description: failure.NewDescription("could not determine current user",
					failure.WithErr(err),
				),
			}
		}
		username = current.Username
	}

	home, err := os.UserHomeDir()
	if err != nil && c.keyDir == "" {
		return nil, failure.KeyLoad{
			Description: failure.NewDescription("could not determine home directory",
				failure.WithErr(err),
			),
		}
	}

	return signing.LoadKey(signing.KeyPath(home, c.keyDir, username))
}

func (c *connection) options(prompt func(string) (string, error)) ([]rest.Option, error) {

	options := []rest.Option{
		rest.WithURL(c.url),
	}
	if c.authUser == "" {
		return options, nil
	}

	password := c.authPassword
	if password == "" {
		var err error
		password, err = prompt("Auth Password: ")
		if err != nil {
			return nil, usageError{message: fmt.Sprintf("could not get password for %s: %v", c.authUser, err)}
		}
	}
	options = append(options, rest.WithBasicAuth(c.authUser, password))

	return options, nil
}
