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
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/optakt/code-smell/models/sawtooth"
)

// DecodeTransactionHeader decodes the wire encoding of a transaction header.
func (c *Codec) DecodeTransactionHeader(data []byte) (sawtooth.TransactionHeader, error) {

	fields, err := parse(data)
	if err != nil {
		return sawtooth.TransactionHeader{}, fmt.Errorf("could not parse transaction header: %w", err)
	}

	var header sawtooth.TransactionHeader
	for _, f := range fields {
		switch f.num {
		case txHeaderBatcherPublicKey:
			header.BatcherPublicKey, err = f.string()
		case txHeaderDependencies:
			header.Dependencies, err = f.appendString(header.Dependencies)
		case txHeaderFamilyName:
			header.FamilyName, err = f.string()
		case txHeaderFamilyVersion:
			header.FamilyVersion, err = f.string()
		case txHeaderInputs:
			header.Inputs, err = f.appendString(header.Inputs)
		case txHeaderNonce:
			header.Nonce, err = f.string()
		case txHeaderOutputs:
			header.Outputs, err = f.appendString(header.Outputs)
		case txHeaderPayloadSHA512:
			header.PayloadSHA512, err = f.string()
		case txHeaderSignerPublicKey:
			header.SignerPublicKey, err = f.string()
		}
		if err != nil {
			return sawtooth.TransactionHeader{}, fmt.Errorf("could not decode transaction header field %d: %w", f.num, err)
		}
	}

	return header, nil
}

// DecodeBatchHeader decodes the wire encoding of a batch header.
func (c *Codec) DecodeBatchHeader(data []byte) (sawtooth.BatchHeader, error) {

	fields, err := parse(data)
	if err != nil {
		return sawtooth.BatchHeader{}, fmt.Errorf("could not parse batch header: %w", err)
	}

	var header sawtooth.BatchHeader
	for _, f := range fields {
		switch f.num {
		case batchHeaderSignerPublicKey:
			header.SignerPublicKey, err = f.string()
		case batchHeaderTransactionIDs:
			header.TransactionIDs, err = f.appendString(header.TransactionIDs)
		}
		if err != nil {
			return sawtooth.BatchHeader{}, fmt.Errorf("could not decode batch header field %d: %w", f.num, err)
		}
	}

	return header, nil
}

// DecodeBatchList decodes the wire encoding of a batch list.
func (c *Codec) DecodeBatchList(data []byte) (sawtooth.BatchList, error) {

	fields, err := parse(data)
	if err != nil {
		return sawtooth.BatchList{}, fmt.Errorf("could not parse batch list: %w", err)
	}

	var list sawtooth.BatchList
	for _, f := range fields {
		if f.num != batchListBatches {
			continue
		}
		msg, err := f.bytes()
		if err != nil {
			return sawtooth.BatchList{}, fmt.Errorf("could not decode batch list field %d: %w", f.num, err)
		}
		batch, err := decodeBatch(msg)
		if err != nil {
			return sawtooth.BatchList{}, fmt.Errorf("could not decode batch %d: %w", len(list.Batches), err)
		}
		list.Batches = append(list.Batches, batch)
	}

	return list, nil
}

func decodeBatch(data []byte) (sawtooth.Batch, error) {

	fields, err := parse(data)
	if err != nil {
		return sawtooth.Batch{}, err
	}

	var batch sawtooth.Batch
	for _, f := range fields {
		switch f.num {
		case batchHeader:
			batch.Header, err = f.bytes()
		case batchHeaderSignature:
			batch.HeaderSignature, err = f.string()
		case batchTransactions:
			var msg []byte
			msg, err = f.bytes()
			if err != nil {
				break
			}
			var tx sawtooth.Transaction
			tx, err = decodeTransaction(msg)
			batch.Transactions = append(batch.Transactions, tx)
		case batchTrace:
			batch.Trace, err = f.bool()
		}
		if err != nil {
			return sawtooth.Batch{}, fmt.Errorf("invalid field %d: %w", f.num, err)
		}
	}

	return batch, nil
}

func decodeTransaction(data []byte) (sawtooth.Transaction, error) {

	fields, err := parse(data)
	if err != nil {
		return sawtooth.Transaction{}, err
	}

	var tx sawtooth.Transaction
	for _, f := range fields {
		switch f.num {
		case txHeader:
			tx.Header, err = f.bytes()
		case txHeaderSignature:
			tx.HeaderSignature, err = f.string()
		case txPayload:
			tx.Payload, err = f.bytes()
		}
		if err != nil {
			return sawtooth.Transaction{}, fmt.Errorf("invalid field %d: %w", f.num, err)
		}
	}

	return tx, nil
}

type field struct {
	num    protowire.Number
	typ    protowire.Type
	data   []byte
	varint uint64
}

// parse splits a message into its top-level fields. Unknown fields are kept so
// that callers can skip them.
func parse(data []byte) ([]field, error) {
	var fields []field
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("could not consume tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.BytesType:
			f.data, n = protowire.ConsumeBytes(data)
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(data)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return nil, fmt.Errorf("could not consume field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]

		fields = append(fields, f)
	}
	return fields, nil
}

func (f field) bytes() ([]byte, error) {
	if f.typ != protowire.BytesType {
		return nil, fmt.Errorf("unexpected wire type %d", f.typ)
	}
	return append([]byte(nil), f.data...), nil
}

func (f field) string() (string, error) {
	if f.typ != protowire.BytesType {
		return "", fmt.Errorf("unexpected wire type %d", f.typ)
	}
	return string(f.data), nil
}

func (f field) appendString(ss []string) ([]string, error) {
	s, err := f.string()
	if err != nil {
		return nil, err
	}
	return append(ss, s), nil
}

func (f field) bool() (bool, error) {
	if f.typ != protowire.VarintType {
		return false, fmt.Errorf("unexpected wire type %d", f.typ)
	}
	return protowire.DecodeBool(f.varint), nil
}
