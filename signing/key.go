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

package signing

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/optakt/code-smell/failure"
)

const keyExtension = ".priv"

// DefaultKeyDir returns the directory holding the private keys of the user
// whose home directory is given.
func DefaultKeyDir(home string) string {
	return filepath.Join(home, ".sawtooth", "keys")
}

// KeyPath returns the path of the private key file for the given user. When
// no key directory is given, the default one under the home directory is used.
func KeyPath(home string, keyDir string, username string) string {
	if keyDir == "" {
		keyDir = DefaultKeyDir(home)
	}
	return filepath.Join(keyDir, username+keyExtension)
}

// LoadKey reads a hex encoded secp256k1 private key from the given file and
// returns a signer for it.
func LoadKey(path string) (*Signer, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.KeyLoad{
			Path: path,
			Description: failure.NewDescription("could not read key file",
				failure.WithErr(err),
			),
		}
	}

	encoded := strings.TrimSpace(string(data))
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, failure.KeyLoad{
			Path: path,
			Description: failure.NewDescription("could not decode key hex",
				failure.WithErr(err),
			),
		}
	}

	signer, err := NewSigner(raw)
	if err != nil {
		return nil, failure.KeyLoad{
			Path: path,
			Description: failure.NewDescription("invalid secp256k1 private key",
				failure.WithInt("length", len(raw)),
				failure.WithErr(err),
			),
		}
	}

	return signer, nil
}
