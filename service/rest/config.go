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

package rest

import (
	"net/http"
	"time"
)

// DefaultURL is the address of the REST API of a local Sawtooth node.
const DefaultURL = "http://127.0.0.1:8008"

// DefaultConfig is the default configuration for the REST API client.
var DefaultConfig = Config{
	URL:           DefaultURL,
	Timeout:       30 * time.Second,
	Retries:       3,
	RetryInterval: 500 * time.Millisecond,
	HTTPClient:    http.DefaultClient,
}

// Config contains the configuration options for the REST API client.
type Config struct {
	URL           string
	AuthUser      string
	AuthPassword  string
	Timeout       time.Duration
	Retries       uint64
	RetryInterval time.Duration
	HTTPClient    *http.Client
}

// Option is a function that can be applied to a Config.
type Option func(*Config)

// WithURL sets the base URL of the REST API. A URL without scheme is assumed
// to use plain HTTP.
func WithURL(url string) Option {
	return func(cfg *Config) {
		cfg.URL = url
	}
}

// WithBasicAuth sets the credentials sent to a REST API behind HTTP Basic
// Authentication.
func WithBasicAuth(user string, password string) Option {
	return func(cfg *Config) {
		cfg.AuthUser = user
		cfg.AuthPassword = password
	}
}

// WithTimeout sets the timeout of a single request. Status requests get the
// requested wait time on top of it. Zero disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}

// WithRetries sets how many times a request is retried when the REST API can
// not be reached, and the initial interval between attempts.
func WithRetries(retries uint64, interval time.Duration) Option {
	return func(cfg *Config) {
		cfg.Retries = retries
		cfg.RetryInterval = interval
	}
}

// WithHTTPClient sets the HTTP client used to send requests.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *Config) {
		cfg.HTTPClient = client
	}
}
