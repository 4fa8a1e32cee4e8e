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
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/optakt/code-smell/models/sawtooth"
	"github.com/optakt/code-smell/models/smell"
	"github.com/optakt/code-smell/signing"
)

// Global variables that can be used for testing. They are non-nil valid values
// for the types commonly needed to test the client components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericBytes = []byte(`test`)

	GenericPrivateKey = "2f1e7b7a130d7ba9da0068b3bb0ba1d79e7e77110302c9f746c3c2a63fe40088"
	GenericPublicKey  = "026a2c795a9776f75464aa3bda3534c3154a6e91b357b1181d3f515110f84b67c5"

	GenericName  = "large_class"
	GenericValue = "500"

	GenericPayload = smell.Payload{
		Name:   GenericName,
		Value:  GenericValue,
		Action: smell.ActionCreate,
	}

	GenericSignature = strings.Repeat("ab", 64)
	GenericBatchID   = strings.Repeat("cd", 64)

	GenericTransaction = &sawtooth.Transaction{
		Header:          GenericBytes,
		HeaderSignature: GenericSignature,
		Payload:         GenericPayload.Encode(),
	}

	GenericBatchList = &sawtooth.BatchList{
		Batches: []sawtooth.Batch{
			{
				Header:          GenericBytes,
				HeaderSignature: GenericBatchID,
				Transactions:    []sawtooth.Transaction{*GenericTransaction},
			},
		},
	}

	GenericResponse = []byte(`{"link": "http://127.0.0.1:8008/batch_statuses?id=` + GenericBatchID + `"}`)
)

// GenericSigner returns a real signer for the generic private key.
func GenericSigner(t *testing.T) *signing.Signer {
	t.Helper()

	raw, err := hex.DecodeString(GenericPrivateKey)
	require.NoError(t, err)
	signer, err := signing.NewSigner(raw)
	require.NoError(t, err)

	return signer
}

// GenericStatus returns a batch status for the generic batch.
func GenericStatus(status string) *sawtooth.BatchStatus {
	return &sawtooth.BatchStatus{
		ID:     GenericBatchID,
		Status: status,
	}
}
