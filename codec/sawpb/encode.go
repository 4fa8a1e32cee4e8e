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

package sawpb

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/optakt/code-smell/models/sawtooth"
)

// EncodeTransactionHeader returns the wire encoding of a transaction header.
func (c *Codec) EncodeTransactionHeader(header sawtooth.TransactionHeader) ([]byte, error) {
	var b []byte
	b = appendString(b, txHeaderBatcherPublicKey, header.BatcherPublicKey)
	b = appendStrings(b, txHeaderDependencies, header.Dependencies)
	b = appendString(b, txHeaderFamilyName, header.FamilyName)
	b = appendString(b, txHeaderFamilyVersion, header.FamilyVersion)
	b = appendStrings(b, txHeaderInputs, header.Inputs)
	b = appendString(b, txHeaderNonce, header.Nonce)
	b = appendStrings(b, txHeaderOutputs, header.Outputs)
	b = appendString(b, txHeaderPayloadSHA512, header.PayloadSHA512)
	b = appendString(b, txHeaderSignerPublicKey, header.SignerPublicKey)
	return b, nil
}

// EncodeBatchHeader returns the wire encoding of a batch header.
func (c *Codec) EncodeBatchHeader(header sawtooth.BatchHeader) ([]byte, error) {
	var b []byte
	b = appendString(b, batchHeaderSignerPublicKey, header.SignerPublicKey)
	b = appendStrings(b, batchHeaderTransactionIDs, header.TransactionIDs)
	return b, nil
}

// EncodeBatchList returns the wire encoding of a batch list, which is the body
// of a batch submission.
func (c *Codec) EncodeBatchList(list sawtooth.BatchList) ([]byte, error) {
	var b []byte
	for _, batch := range list.Batches {
		b = appendMessage(b, batchListBatches, encodeBatch(batch))
	}
	return b, nil
}

func encodeBatch(batch sawtooth.Batch) []byte {
	var b []byte
	b = appendBytes(b, batchHeader, batch.Header)
	b = appendString(b, batchHeaderSignature, batch.HeaderSignature)
	for _, tx := range batch.Transactions {
		b = appendMessage(b, batchTransactions, encodeTransaction(tx))
	}
	if batch.Trace {
		b = protowire.AppendTag(b, batchTrace, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

func encodeTransaction(tx sawtooth.Transaction) []byte {
	var b []byte
	b = appendBytes(b, txHeader, tx.Header)
	b = appendString(b, txHeaderSignature, tx.HeaderSignature)
	b = appendBytes(b, txPayload, tx.Payload)
	return b
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// Repeated fields keep their empty elements.
func appendStrings(b []byte, num protowire.Number, ss []string) []byte {
	for _, s := range ss {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// Embedded messages are always written, even when empty.
func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}
