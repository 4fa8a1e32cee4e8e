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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"

	"github.com/optakt/code-smell/failure"
)

const (
	// HomeVariable is the environment variable holding the Sawtooth home
	// directory.
	HomeVariable = "SAWTOOTH_HOME"

	defaultsName = "code_smell.toml"
	smellsKey    = "smells"
)

// Smell is a code smell and its metric value, as listed in the defaults file.
type Smell struct {
	Name  string
	Value string
}

// Defaults is the list of code smells loaded by the default command, sorted
// by name.
type Defaults []Smell

// DefaultsPath returns the location of the family configuration file under
// the given Sawtooth home directory.
func DefaultsPath(home string) string {
	return filepath.Join(home, "etc", defaultsName)
}

// LoadDefaults reads the code smells of the `smells` table of the given TOML
// file.
func LoadDefaults(path string) (Defaults, error) {

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, failure.ConfigNotFound{
			Path:        path,
			Description: failure.NewDescription("no code smell configuration found"),
		}
	}
	if err != nil {
		return nil, failure.Config{
			Path: path,
			Description: failure.NewDescription("could not access configuration file",
				failure.WithErr(err),
			),
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	err = v.ReadInConfig()
	if err != nil {
		return nil, failure.Config{
			Path: path,
			Description: failure.NewDescription("could not read configuration file",
				failure.WithErr(err),
			),
		}
	}

	values := v.GetStringMapString(smellsKey)
	if len(values) == 0 {
		return nil, failure.Config{
			Path: path,
			Description: failure.NewDescription("configuration file lists no code smells",
				failure.WithString("table", smellsKey),
			),
		}
	}

	defaults := make(Defaults, 0, len(values))
	for name, value := range values {
		defaults = append(defaults, Smell{Name: name, Value: value})
	}
	sort.Slice(defaults, func(i int, j int) bool {
		return defaults[i].Name < defaults[j].Name
	})

	return defaults, nil
}

// String returns a short summary of the defaults for logging.
func (d Defaults) String() string {
	return fmt.Sprintf("%d code smells", len(d))
}
