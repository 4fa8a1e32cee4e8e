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

// Package sawpb encodes and decodes the Sawtooth ledger messages in the
// protobuf wire format expected by the validator.
//
// Fields are written in ascending field number order and default values are
// omitted, which matches the output of the reference protobuf serializers. The
// encoding of a header is thus stable, so hashes and signatures over it can be
// reproduced by any other client.
package sawpb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the TransactionHeader message.
const (
	txHeaderBatcherPublicKey protowire.Number = 1
	txHeaderDependencies     protowire.Number = 2
	txHeaderFamilyName       protowire.Number = 3
	txHeaderFamilyVersion    protowire.Number = 4
	txHeaderInputs           protowire.Number = 5
	txHeaderNonce            protowire.Number = 6
	txHeaderOutputs          protowire.Number = 7
	txHeaderPayloadSHA512    protowire.Number = 9
	txHeaderSignerPublicKey  protowire.Number = 10
)

// Field numbers of the Transaction message.
const (
	txHeader          protowire.Number = 1
	txHeaderSignature protowire.Number = 2
	txPayload         protowire.Number = 3
)

// Field numbers of the BatchHeader message.
const (
	batchHeaderSignerPublicKey protowire.Number = 1
	batchHeaderTransactionIDs  protowire.Number = 2
)

// Field numbers of the Batch message.
const (
	batchHeader          protowire.Number = 1
	batchHeaderSignature protowire.Number = 2
	batchTransactions    protowire.Number = 3
	batchTrace           protowire.Number = 4
)

// Field numbers of the BatchList message.
const (
	batchListBatches protowire.Number = 1
)

// Codec converts ledger messages to and from their wire representation.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}
