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

package failure

import (
	"fmt"
)

// ConfigNotFound is returned when the family configuration file does not exist.
type ConfigNotFound struct {
	Description Description
	Path        string
}

func (c ConfigNotFound) Error() string {
	return fmt.Sprintf("configuration file %s does not exist: %s", c.Path, c.Description)
}

func (c ConfigNotFound) Is(target error) bool { return target == ErrClient }

// Config is returned when the family configuration file exists but can not be
// read or parsed.
type Config struct {
	Description Description
	Path        string
}

func (c Config) Error() string {
	return fmt.Sprintf("invalid configuration file %s: %s", c.Path, c.Description)
}

func (c Config) Is(target error) bool { return target == ErrClient }
