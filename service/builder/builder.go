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

package builder

import (
	"fmt"

	"github.com/optakt/code-smell/models/sawtooth"
	"github.com/optakt/code-smell/models/smell"
)

// Builder creates signed code smell transactions and wraps them into signed
// batches.
type Builder struct {
	sign  Signer
	codec Codec
	cfg   Config
}

// New creates a new builder that signs with the given signer and serializes
// headers with the given codec.
func New(sign Signer, codec Codec, options ...Option) *Builder {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	b := Builder{
		sign:  sign,
		codec: codec,
		cfg:   cfg,
	}

	return &b
}

// Transaction creates a signed transaction for the given payload. The state
// address of the code smell is used as the only input and output.
func (b *Builder) Transaction(payload smell.Payload) (*sawtooth.Transaction, error) {

	nonce, err := b.cfg.Nonce()
	if err != nil {
		return nil, fmt.Errorf("could not generate nonce: %w", err)
	}

	data := payload.Encode()
	address := smell.Address(payload.Name)
	key := b.sign.PublicKey()

	header := sawtooth.TransactionHeader{
		BatcherPublicKey: key,
		Dependencies:     []string{},
		FamilyName:       smell.FamilyName,
		FamilyVersion:    smell.FamilyVersion,
		Inputs:           []string{address},
		Nonce:            nonce,
		Outputs:          []string{address},
		PayloadSHA512:    smell.Hash(data),
		SignerPublicKey:  key,
	}
	encoded, err := b.codec.EncodeTransactionHeader(header)
	if err != nil {
		return nil, fmt.Errorf("could not encode transaction header: %w", err)
	}

	signature, err := b.sign.Sign(encoded)
	if err != nil {
		return nil, fmt.Errorf("could not sign transaction header: %w", err)
	}

	tx := sawtooth.Transaction{
		Header:          encoded,
		HeaderSignature: signature,
		Payload:         data,
	}

	return &tx, nil
}

// Batch wraps the given transactions, in order, into a single signed batch and
// returns the batch list to submit.
func (b *Builder) Batch(txs ...*sawtooth.Transaction) (*sawtooth.BatchList, error) {

	if len(txs) == 0 {
		return nil, fmt.Errorf("batch needs at least one transaction")
	}

	ids := make([]string, 0, len(txs))
	transactions := make([]sawtooth.Transaction, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID())
		transactions = append(transactions, *tx)
	}

	header := sawtooth.BatchHeader{
		SignerPublicKey: b.sign.PublicKey(),
		TransactionIDs:  ids,
	}
	encoded, err := b.codec.EncodeBatchHeader(header)
	if err != nil {
		return nil, fmt.Errorf("could not encode batch header: %w", err)
	}

	signature, err := b.sign.Sign(encoded)
	if err != nil {
		return nil, fmt.Errorf("could not sign batch header: %w", err)
	}

	batch := sawtooth.Batch{
		Header:          encoded,
		HeaderSignature: signature,
		Transactions:    transactions,
		Trace:           b.cfg.Trace,
	}
	list := sawtooth.BatchList{
		Batches: []sawtooth.Batch{batch},
	}

	return &list, nil
}
