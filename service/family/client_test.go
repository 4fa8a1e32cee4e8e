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

package family_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/code-smell/config"
	"github.com/optakt/code-smell/failure"
	"github.com/optakt/code-smell/models/sawtooth"
	"github.com/optakt/code-smell/models/smell"
	"github.com/optakt/code-smell/service/family"
	"github.com/optakt/code-smell/testing/mocks"
)

func TestClient_Create(t *testing.T) {
	t.Run("nominal case without wait", func(t *testing.T) {
		t.Parallel()

		build := mocks.BaselineBuilder(t)
		build.TransactionFunc = func(payload smell.Payload) (*sawtooth.Transaction, error) {
			assert.Equal(t, mocks.GenericPayload, payload)

			return mocks.GenericTransaction, nil
		}
		build.BatchFunc = func(txs ...*sawtooth.Transaction) (*sawtooth.BatchList, error) {
			assert.Equal(t, []*sawtooth.Transaction{mocks.GenericTransaction}, txs)

			return mocks.GenericBatchList, nil
		}
		codec := mocks.BaselineCodec(t)
		codec.EncodeBatchListFunc = func(list sawtooth.BatchList) ([]byte, error) {
			assert.Equal(t, *mocks.GenericBatchList, list)

			return mocks.GenericBytes, nil
		}
		api := mocks.BaselineAPI(t)
		api.SubmitFunc = func(_ context.Context, data []byte) ([]byte, error) {
			assert.Equal(t, mocks.GenericBytes, data)

			return mocks.GenericResponse, nil
		}
		api.StatusFunc = func(context.Context, string, uint) (*sawtooth.BatchStatus, error) {
			t.Error("status should not be polled without wait")

			return nil, mocks.GenericError
		}

		client := family.New(mocks.NoopLogger, build, codec, api, mocks.BaselineValidator(t))

		got, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, 0)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericBatchID, got.BatchID)
		assert.Equal(t, mocks.GenericResponse, got.Response)
		assert.Empty(t, got.Status)
	})

	t.Run("returns after first poll when committed", func(t *testing.T) {
		t.Parallel()

		var polls int32
		api := mocks.BaselineAPI(t)
		api.StatusFunc = func(_ context.Context, batchID string, wait uint) (*sawtooth.BatchStatus, error) {
			atomic.AddInt32(&polls, 1)
			assert.Equal(t, mocks.GenericBatchID, batchID)
			assert.Equal(t, uint(10), wait)

			return mocks.GenericStatus(sawtooth.StatusCommitted), nil
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t),
			family.WithClock(clock.NewMock()),
		)

		got, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, 10*time.Second)

		require.NoError(t, err)
		assert.Equal(t, sawtooth.StatusCommitted, got.Status)
		assert.Equal(t, mocks.GenericResponse, got.Response)
		assert.Equal(t, int32(1), atomic.LoadInt32(&polls))
	})

	t.Run("stops polling when wait budget is exhausted", func(t *testing.T) {
		t.Parallel()

		clk := clock.NewMock()
		var waits []uint
		api := mocks.BaselineAPI(t)
		api.StatusFunc = func(_ context.Context, _ string, wait uint) (*sawtooth.BatchStatus, error) {
			waits = append(waits, wait)
			clk.Add(time.Second)

			return mocks.GenericStatus(sawtooth.StatusPending), nil
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t),
			family.WithClock(clk),
			family.WithPollInterval(0),
		)

		got, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, 5*time.Second)

		require.Error(t, err)
		var timeout failure.Timeout
		require.ErrorAs(t, err, &timeout)
		assert.Equal(t, mocks.GenericBatchID, timeout.BatchID)
		assert.Equal(t, sawtooth.StatusPending, timeout.Status)
		assert.ErrorIs(t, err, failure.ErrClient)

		require.NotNil(t, got)
		assert.Equal(t, mocks.GenericResponse, got.Response)
		assert.Equal(t, sawtooth.StatusPending, got.Status)
		assert.Equal(t, []uint{5, 4, 3, 2, 1}, waits)
	})

	t.Run("terminates within wait budget on real clock", func(t *testing.T) {
		t.Parallel()

		api := mocks.BaselineAPI(t)
		api.StatusFunc = func(context.Context, string, uint) (*sawtooth.BatchStatus, error) {
			return mocks.GenericStatus(sawtooth.StatusPending), nil
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t),
			family.WithPollInterval(10*time.Millisecond),
		)

		start := time.Now()
		_, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, 200*time.Millisecond)

		assert.ErrorAs(t, err, &failure.Timeout{})
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("waits between polls", func(t *testing.T) {
		t.Parallel()

		var polls int32
		api := mocks.BaselineAPI(t)
		api.StatusFunc = func(context.Context, string, uint) (*sawtooth.BatchStatus, error) {
			if atomic.AddInt32(&polls, 1) < 3 {
				return mocks.GenericStatus(sawtooth.StatusPending), nil
			}
			return mocks.GenericStatus(sawtooth.StatusCommitted), nil
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t),
			family.WithPollInterval(20*time.Millisecond),
		)

		start := time.Now()
		got, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, time.Minute)

		require.NoError(t, err)
		assert.Equal(t, sawtooth.StatusCommitted, got.Status)
		assert.Equal(t, int32(3), atomic.LoadInt32(&polls))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("handles invalid batch", func(t *testing.T) {
		t.Parallel()

		api := mocks.BaselineAPI(t)
		api.StatusFunc = func(context.Context, string, uint) (*sawtooth.BatchStatus, error) {
			status := mocks.GenericStatus(sawtooth.StatusInvalid)
			status.InvalidTransactions = []sawtooth.InvalidTransaction{
				{ID: mocks.GenericSignature, Message: "code smell already exists"},
			}
			return status, nil
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t))

		got, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, time.Second)

		var invalid failure.Invalid
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, mocks.GenericBatchID, invalid.BatchID)
		assert.Contains(t, invalid.Error(), "code smell already exists")
		require.NotNil(t, got)
		assert.Equal(t, sawtooth.StatusInvalid, got.Status)
	})

	t.Run("returns unknown status", func(t *testing.T) {
		t.Parallel()

		api := mocks.BaselineAPI(t)
		api.StatusFunc = func(context.Context, string, uint) (*sawtooth.BatchStatus, error) {
			return mocks.GenericStatus(sawtooth.StatusUnknown), nil
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t))

		got, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, time.Second)

		require.NoError(t, err)
		assert.Equal(t, sawtooth.StatusUnknown, got.Status)
	})

	t.Run("handles status failure", func(t *testing.T) {
		t.Parallel()

		api := mocks.BaselineAPI(t)
		api.StatusFunc = func(context.Context, string, uint) (*sawtooth.BatchStatus, error) {
			return nil, mocks.GenericError
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t))

		got, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, time.Second)

		assert.ErrorIs(t, err, mocks.GenericError)
		require.NotNil(t, got)
		assert.Equal(t, mocks.GenericResponse, got.Response)
	})

	t.Run("handles canceled context while waiting", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		api := mocks.BaselineAPI(t)
		api.StatusFunc = func(context.Context, string, uint) (*sawtooth.BatchStatus, error) {
			cancel()
			return mocks.GenericStatus(sawtooth.StatusPending), nil
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t),
			family.WithPollInterval(time.Hour),
		)

		_, err := client.Create(ctx, mocks.GenericName, mocks.GenericValue, time.Hour)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("handles submit failure", func(t *testing.T) {
		t.Parallel()

		api := mocks.BaselineAPI(t)
		api.SubmitFunc = func(context.Context, []byte) ([]byte, error) {
			return nil, failure.NotFound{URL: "http://127.0.0.1:8008/batches"}
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), api, mocks.BaselineValidator(t))

		got, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, time.Second)

		assert.ErrorAs(t, err, &failure.NotFound{})
		assert.Nil(t, got)
	})

	t.Run("handles invalid payload", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.PayloadFunc = func(smell.Payload) error {
			return failure.InvalidPayload{Field: "name"}
		}
		build := mocks.BaselineBuilder(t)
		build.TransactionFunc = func(smell.Payload) (*sawtooth.Transaction, error) {
			t.Error("invalid payload should not be built")

			return nil, mocks.GenericError
		}

		client := family.New(mocks.NoopLogger, build, mocks.BaselineCodec(t), mocks.BaselineAPI(t), validate)

		_, err := client.Create(context.Background(), "a,b", mocks.GenericValue, 0)

		assert.ErrorAs(t, err, &failure.InvalidPayload{})
	})

	t.Run("skips validation when disabled", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.PayloadFunc = func(smell.Payload) error {
			t.Error("validation should be skipped")

			return mocks.GenericError
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), mocks.BaselineAPI(t), validate,
			family.WithValidation(false),
		)

		_, err := client.Create(context.Background(), "a,b", mocks.GenericValue, 0)

		assert.NoError(t, err)
	})

	t.Run("handles build failure", func(t *testing.T) {
		t.Parallel()

		build := mocks.BaselineBuilder(t)
		build.BatchFunc = func(...*sawtooth.Transaction) (*sawtooth.BatchList, error) {
			return nil, mocks.GenericError
		}

		client := family.New(mocks.NoopLogger, build, mocks.BaselineCodec(t), mocks.BaselineAPI(t), mocks.BaselineValidator(t))

		_, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, 0)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles encoding failure", func(t *testing.T) {
		t.Parallel()

		codec := mocks.BaselineCodec(t)
		codec.EncodeBatchListFunc = func(sawtooth.BatchList) ([]byte, error) {
			return nil, mocks.GenericError
		}

		client := family.New(mocks.NoopLogger, mocks.BaselineBuilder(t), codec, mocks.BaselineAPI(t), mocks.BaselineValidator(t))

		_, err := client.Create(context.Background(), mocks.GenericName, mocks.GenericValue, 0)

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func TestClient_Defaults(t *testing.T) {
	defaults := config.Defaults{
		{Name: "god_object", Value: "0.75"},
		{Name: "large_class", Value: "500"},
		{Name: "long_method", Value: "50"},
	}

	var names []string
	build := mocks.BaselineBuilder(t)
	build.TransactionFunc = func(payload smell.Payload) (*sawtooth.Transaction, error) {
		assert.Equal(t, smell.ActionCreate, payload.Action)
		names = append(names, payload.Name)

		tx := *mocks.GenericTransaction
		tx.HeaderSignature = payload.Name
		return &tx, nil
	}
	build.BatchFunc = func(txs ...*sawtooth.Transaction) (*sawtooth.BatchList, error) {
		require.Len(t, txs, len(defaults))
		for i, tx := range txs {
			assert.Equal(t, defaults[i].Name, tx.ID())
		}

		return mocks.GenericBatchList, nil
	}

	client := family.New(mocks.NoopLogger, build, mocks.BaselineCodec(t), mocks.BaselineAPI(t), mocks.BaselineValidator(t))

	got, err := client.Defaults(context.Background(), defaults, time.Second)

	require.NoError(t, err)
	assert.Equal(t, []string{"god_object", "large_class", "long_method"}, names)
	assert.Equal(t, mocks.GenericBatchID, got.BatchID)
	assert.Equal(t, sawtooth.StatusCommitted, got.Status)
}
