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
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/code-smell/codec/sawpb"
	"github.com/optakt/code-smell/config"
	"github.com/optakt/code-smell/failure"
	"github.com/optakt/code-smell/service/builder"
	"github.com/optakt/code-smell/service/family"
	"github.com/optakt/code-smell/service/rest"
	"github.com/optakt/code-smell/validator"
)

func (e environment) create(ctx context.Context, verbose int, args []string) error {

	var (
		conn       connection
		flagName   string
		flagMetric string
	)

	flags := pflag.NewFlagSet(commandCreate, pflag.ContinueOnError)
	flags.SetOutput(e.stderr)
	flags.StringVarP(&flagName, "name", "n", "", "unique code smell identifier")
	flags.StringVarP(&flagMetric, "metric", "m", "", "metric of code smell")
	conn.register(flags)

	err := parse(flags, args)
	if err != nil {
		return err
	}
	err = leftover(flags)
	if err != nil {
		return err
	}
	if flagName == "" || flagMetric == "" {
		flags.Usage()
		return usageError{message: "both --name and --metric are required"}
	}

	log := e.logger(verbose + conn.verbose)
	client, err := e.client(log, &conn)
	if err != nil {
		return err
	}

	log.Info().Str("name", flagName).Str("metric", flagMetric).Str("url", conn.url).Msg("creating code smell")

	result, err := client.Create(ctx, flagName, flagMetric, conn.timeout())
	e.print(result)

	return err
}

func (e environment) defaults(ctx context.Context, verbose int, args []string) error {

	var conn connection

	flags := pflag.NewFlagSet(commandDefault, pflag.ContinueOnError)
	flags.SetOutput(e.stderr)
	conn.register(flags)

	err := parse(flags, args)
	if err != nil {
		return err
	}
	err = leftover(flags)
	if err != nil {
		return err
	}

	log := e.logger(verbose + conn.verbose)

	home := os.Getenv(config.HomeVariable)
	if home == "" {
		return failure.Config{
			Path: config.DefaultsPath("$" + config.HomeVariable),
			Description: failure.NewDescription("environment variable not set",
				failure.WithString("variable", config.HomeVariable),
			),
		}
	}
	path := config.DefaultsPath(home)
	defaults, err := config.LoadDefaults(path)
	if err != nil {
		return err
	}

	log.Info().Str("path", path).Stringer("defaults", defaults).Msg("default configuration loaded")

	client, err := e.client(log, &conn)
	if err != nil {
		return err
	}

	result, err := client.Defaults(ctx, defaults, conn.timeout())
	e.print(result)

	return err
}

func (e environment) client(log zerolog.Logger, conn *connection) (*family.Client, error) {

	signer, err := conn.signer()
	if err != nil {
		return nil, err
	}

	options, err := conn.options(e.prompt)
	if err != nil {
		return nil, err
	}

	codec := sawpb.NewCodec()
	build := builder.New(signer, codec, builder.WithTrace(conn.trace))
	api := rest.New(log, options...)
	validate := validator.New()

	client := family.New(log, build, codec, api, validate,
		family.WithValidation(!conn.noValidation),
	)

	return client, nil
}

func (e environment) print(result *family.Result) {
	if result == nil {
		return
	}

	fmt.Fprintf(e.stdout, "Response: %s\n", result.Response)
	fmt.Fprintf(e.stdout, "Batch: %s\n", result.BatchID)
	if result.Status != "" {
		fmt.Fprintf(e.stdout, "Status: %s\n", result.Status)
	}
}
