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

// KeyLoad is returned when a private key file can not be read or does not
// contain a valid secp256k1 private key.
type KeyLoad struct {
	Description Description
	Path        string
}

func (k KeyLoad) Error() string {
	return fmt.Sprintf("could not load private key %s: %s", k.Path, k.Description)
}

func (k KeyLoad) Is(target error) bool { return target == ErrClient }

// Signing is returned when a message could not be signed.
type Signing struct {
	Description Description
}

func (s Signing) Error() string {
	return fmt.Sprintf("could not sign message: %s", s.Description)
}

func (s Signing) Is(target error) bool { return target == ErrClient }
