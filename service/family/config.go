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

package family

import (
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultConfig is the default configuration for the family client.
var DefaultConfig = Config{
	PollInterval: time.Second,
	Clock:        clock.New(),
	Validate:     true,
}

// Config contains the configuration options for the family client.
type Config struct {
	PollInterval time.Duration
	Clock        clock.Clock
	Validate     bool
}

// Option is a function that can be applied to a Config.
type Option func(*Config)

// WithPollInterval sets the delay between two batch status requests. Zero
// polls again as soon as the previous request returns.
func WithPollInterval(interval time.Duration) Option {
	return func(cfg *Config) {
		cfg.PollInterval = interval
	}
}

// WithClock sets the clock used to track the wait budget.
func WithClock(clk clock.Clock) Option {
	return func(cfg *Config) {
		cfg.Clock = clk
	}
}

// WithValidation enables or disables client-side payload validation.
func WithValidation(validate bool) Option {
	return func(cfg *Config) {
		cfg.Validate = validate
	}
}
