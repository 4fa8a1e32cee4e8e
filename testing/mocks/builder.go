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

package mocks

import (
	"testing"

	"github.com/optakt/code-smell/models/sawtooth"
	"github.com/optakt/code-smell/models/smell"
)

type Builder struct {
	TransactionFunc func(payload smell.Payload) (*sawtooth.Transaction, error)
	BatchFunc       func(txs ...*sawtooth.Transaction) (*sawtooth.BatchList, error)
}

func BaselineBuilder(t *testing.T) *Builder {
	t.Helper()

	b := Builder{
		TransactionFunc: func(smell.Payload) (*sawtooth.Transaction, error) {
			return GenericTransaction, nil
		},
		BatchFunc: func(...*sawtooth.Transaction) (*sawtooth.BatchList, error) {
			return GenericBatchList, nil
		},
	}

	return &b
}

func (b *Builder) Transaction(payload smell.Payload) (*sawtooth.Transaction, error) {
	return b.TransactionFunc(payload)
}

func (b *Builder) Batch(txs ...*sawtooth.Transaction) (*sawtooth.BatchList, error) {
	return b.BatchFunc(txs...)
}
