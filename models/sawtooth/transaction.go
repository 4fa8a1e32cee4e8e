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

package sawtooth

// TransactionHeader is the signed part of a transaction. Its serialized form
// is what the header signature covers.
type TransactionHeader struct {
	BatcherPublicKey string
	Dependencies     []string
	FamilyName       string
	FamilyVersion    string
	Inputs           []string
	Nonce            string
	Outputs          []string
	PayloadSHA512    string
	SignerPublicKey  string
}

// Transaction is a serialized header, the signature over that header and the
// family-specific payload.
type Transaction struct {
	Header          []byte
	HeaderSignature string
	Payload         []byte
}

// ID returns the transaction identifier, which is its header signature.
func (t Transaction) ID() string {
	return t.HeaderSignature
}
