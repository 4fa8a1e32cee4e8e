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
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/onflow/flow-go/crypto"
	"github.com/onflow/flow-go/crypto/hash"

	"github.com/optakt/code-smell/failure"
)

const (
	algorithm       = crypto.ECDSASecp256k1
	scalarLength    = 32
	signatureLength = 2 * scalarLength
)

// Signer signs messages with a secp256k1 private key. Signatures are computed
// over the SHA-256 digest of the message and encoded as the hex of the 64-byte
// compact R||S form, with S normalized to the lower half of the curve order.
type Signer struct {
	key    crypto.PrivateKey
	public string
}

// NewSigner creates a signer from the raw bytes of a secp256k1 private key.
func NewSigner(raw []byte) (*Signer, error) {

	key, err := crypto.DecodePrivateKey(algorithm, raw)
	if err != nil {
		return nil, fmt.Errorf("could not decode private key: %w", err)
	}

	public, err := compress(key.PublicKey())
	if err != nil {
		return nil, fmt.Errorf("could not encode public key: %w", err)
	}

	s := Signer{
		key:    key,
		public: hex.EncodeToString(public),
	}

	return &s, nil
}

// PublicKey returns the hex encoded compressed public key of the signer.
func (s *Signer) PublicKey() string {
	return s.public
}

// Sign returns the hex encoded signature of the given message.
func (s *Signer) Sign(message []byte) (string, error) {

	sig, err := s.key.Sign(message, hash.NewSHA2_256())
	if err != nil {
		return "", failure.Signing{
			Description: failure.NewDescription("could not compute signature",
				failure.WithErr(err),
			),
		}
	}
	if len(sig) != signatureLength {
		return "", failure.Signing{
			Description: failure.NewDescription("unexpected signature length",
				failure.WithInt("have", len(sig)),
				failure.WithInt("want", signatureLength),
			),
		}
	}

	return hex.EncodeToString(normalize(sig)), nil
}

// Verify checks a hex encoded signature of the given message against a hex
// encoded compressed public key.
func Verify(publicKey string, signature string, message []byte) (bool, error) {

	compressed, err := hex.DecodeString(publicKey)
	if err != nil {
		return false, fmt.Errorf("could not decode public key hex: %w", err)
	}
	raw, err := decompress(compressed)
	if err != nil {
		return false, fmt.Errorf("could not decompress public key: %w", err)
	}
	key, err := crypto.DecodePublicKey(algorithm, raw)
	if err != nil {
		return false, fmt.Errorf("could not decode public key: %w", err)
	}
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("could not decode signature hex: %w", err)
	}

	valid, err := key.Verify(sig, message, hash.NewSHA2_256())
	if err != nil {
		return false, fmt.Errorf("could not verify signature: %w", err)
	}

	return valid, nil
}

// normalize replaces S by N-S when S is in the upper half of the curve order,
// as required by validators built on libsecp256k1.
func normalize(sig []byte) []byte {
	var s secp256k1.ModNScalar
	s.SetByteSlice(sig[scalarLength:])
	if !s.IsOverHalfOrder() {
		return sig
	}

	s.Negate()
	out := make([]byte, signatureLength)
	copy(out, sig[:scalarLength])
	s.PutBytesUnchecked(out[scalarLength:])

	return out
}
