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
)

type Codec struct {
	EncodeTransactionHeaderFunc func(header sawtooth.TransactionHeader) ([]byte, error)
	EncodeBatchHeaderFunc       func(header sawtooth.BatchHeader) ([]byte, error)
	EncodeBatchListFunc         func(list sawtooth.BatchList) ([]byte, error)
}

func BaselineCodec(t *testing.T) *Codec {
	t.Helper()

	c := Codec{
		EncodeTransactionHeaderFunc: func(sawtooth.TransactionHeader) ([]byte, error) {
			return GenericBytes, nil
		},
		EncodeBatchHeaderFunc: func(sawtooth.BatchHeader) ([]byte, error) {
			return GenericBytes, nil
		},
		EncodeBatchListFunc: func(sawtooth.BatchList) ([]byte, error) {
			return GenericBytes, nil
		},
	}

	return &c
}

func (c *Codec) EncodeTransactionHeader(header sawtooth.TransactionHeader) ([]byte, error) {
	return c.EncodeTransactionHeaderFunc(header)
}

func (c *Codec) EncodeBatchHeader(header sawtooth.BatchHeader) ([]byte, error) {
	return c.EncodeBatchHeaderFunc(header)
}

func (c *Codec) EncodeBatchList(list sawtooth.BatchList) ([]byte, error) {
	return c.EncodeBatchListFunc(list)
}
