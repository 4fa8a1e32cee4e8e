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

// BatchHeader is the signed part of a batch. It references the transactions of
// the batch by their header signatures, in execution order.
type BatchHeader struct {
	SignerPublicKey string
	TransactionIDs  []string
}

// Batch groups transactions that are applied atomically.
type Batch struct {
	Header          []byte
	HeaderSignature string
	Transactions    []Transaction
	Trace           bool
}

// ID returns the batch identifier, which is its header signature.
func (b Batch) ID() string {
	return b.HeaderSignature
}

// BatchList is the body of a batch submission.
type BatchList struct {
	Batches []Batch
}
