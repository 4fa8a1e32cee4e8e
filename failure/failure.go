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

// Package failure contains the typed errors returned by the code smell client.
// Each failure carries a Description with the context of the error, and all of
// them match ErrClient when compared with errors.Is.
package failure

import (
	"errors"
)

// ErrClient is matched by every failure of this package when using
// `errors.Is`. It lets the command line tell known client failures apart from
// unexpected errors.
var ErrClient = errors.New("code smell client failure")
