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

package smell

import (
	"crypto/sha512"
	"encoding/hex"
)

// Lengths of the hex encoded parts of a state address.
const (
	PrefixLength  = 6
	NameLength    = 64
	AddressLength = PrefixLength + NameLength
)

// Prefix returns the namespace prefix shared by all code smell addresses.
func Prefix() string {
	return Hash([]byte(Namespace))[:PrefixLength]
}

// Address returns the state address of the code smell with the given name.
func Address(name string) string {
	return Prefix() + Hash([]byte(name))[:NameLength]
}

// Hash returns the lowercase hex encoded SHA-512 digest of the given data.
func Hash(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}
