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

// Batch statuses reported by the REST API.
const (
	StatusPending   = "PENDING"
	StatusCommitted = "COMMITTED"
	StatusInvalid   = "INVALID"
	StatusUnknown   = "UNKNOWN"
)

// BatchStatus is one entry of a batch status response.
type BatchStatus struct {
	ID                  string               `json:"id"`
	Status              string               `json:"status"`
	InvalidTransactions []InvalidTransaction `json:"invalid_transactions"`
}

// InvalidTransaction describes why a transaction of an invalid batch was
// rejected.
type InvalidTransaction struct {
	ID           string `json:"id"`
	Message      string `json:"message"`
	ExtendedData []byte `json:"extended_data"`
}

// Pending returns whether the batch has not reached a final state yet.
func (b BatchStatus) Pending() bool {
	return b.Status == StatusPending
}
