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

package builder

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const nonceSize = 16

// DefaultConfig is the default configuration for the transaction builder.
var DefaultConfig = Config{
	Nonce: RandomNonce,
	Trace: false,
}

// Config contains the configuration options for the transaction builder.
type Config struct {
	Nonce func() (string, error)
	Trace bool
}

// Option is a function that can be applied to a Config.
type Option func(*Config)

// WithNonce sets the function generating the nonce of each transaction.
func WithNonce(nonce func() (string, error)) Option {
	return func(cfg *Config) {
		cfg.Nonce = nonce
	}
}

// WithTrace requests the validator to log extra information about the
// processing of the built batches.
func WithTrace(trace bool) Option {
	return func(cfg *Config) {
		cfg.Trace = trace
	}
}

// RandomNonce returns a hex encoded nonce read from the operating system's
// cryptographically secure random source.
func RandomNonce() (string, error) {
	nonce := make([]byte, nonceSize)
	_, err := rand.Read(nonce)
	if err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}
	return "0x" + hex.EncodeToString(nonce), nil
}
