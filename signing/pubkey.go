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
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/onflow/flow-go/crypto"
)

// Prefix of SEC1 uncompressed points, which the raw X||Y form of flow keys
// lacks.
const prefixUncompressed = 0x04

// compress turns a public key into its 33-byte SEC1 compressed form.
func compress(key crypto.PublicKey) ([]byte, error) {

	raw := key.Encode()
	if len(raw) != 2*scalarLength {
		return nil, fmt.Errorf("invalid raw public key length (have: %d, want: %d)", len(raw), 2*scalarLength)
	}

	point := make([]byte, 0, secp256k1.PubKeyBytesLenUncompressed)
	point = append(point, prefixUncompressed)
	point = append(point, raw...)
	pub, err := secp256k1.ParsePubKey(point)
	if err != nil {
		return nil, fmt.Errorf("could not parse public key: %w", err)
	}

	return pub.SerializeCompressed(), nil
}

// decompress turns a 33-byte SEC1 compressed public key into the 64-byte X||Y
// form.
func decompress(compressed []byte) ([]byte, error) {

	if len(compressed) != secp256k1.PubKeyBytesLenCompressed {
		return nil, fmt.Errorf("invalid compressed public key length (have: %d, want: %d)", len(compressed), secp256k1.PubKeyBytesLenCompressed)
	}
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return nil, fmt.Errorf("could not parse compressed public key: %w", err)
	}

	return pub.SerializeUncompressed()[1:], nil
}
