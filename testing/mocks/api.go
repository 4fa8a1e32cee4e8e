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
	"context"
	"testing"

	"github.com/optakt/code-smell/models/sawtooth"
)

type API struct {
	SubmitFunc func(ctx context.Context, data []byte) ([]byte, error)
	StatusFunc func(ctx context.Context, batchID string, wait uint) (*sawtooth.BatchStatus, error)
}

func BaselineAPI(t *testing.T) *API {
	t.Helper()

	a := API{
		SubmitFunc: func(context.Context, []byte) ([]byte, error) {
			return GenericResponse, nil
		},
		StatusFunc: func(context.Context, string, uint) (*sawtooth.BatchStatus, error) {
			return GenericStatus(sawtooth.StatusCommitted), nil
		},
	}

	return &a
}

func (a *API) Submit(ctx context.Context, data []byte) ([]byte, error) {
	return a.SubmitFunc(ctx, data)
}

func (a *API) Status(ctx context.Context, batchID string, wait uint) (*sawtooth.BatchStatus, error) {
	return a.StatusFunc(ctx, batchID, wait)
}
