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

package family

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/code-smell/config"
	"github.com/optakt/code-smell/failure"
	"github.com/optakt/code-smell/models/sawtooth"
	"github.com/optakt/code-smell/models/smell"
)

// Client creates code smells on the ledger. It builds and signs the
// transactions, submits them as one batch and optionally waits for the batch
// to be committed.
type Client struct {
	log      zerolog.Logger
	build    Builder
	encode   Encoder
	api      API
	validate Validator
	cfg      Config
}

// Result describes a submitted batch.
type Result struct {
	BatchID  string
	Response []byte
	Status   string
}

// New creates a new family client.
func New(log zerolog.Logger, build Builder, encode Encoder, api API, validate Validator, options ...Option) *Client {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	c := Client{
		log:      log.With().Str("component", "family_client").Logger(),
		build:    build,
		encode:   encode,
		api:      api,
		validate: validate,
		cfg:      cfg,
	}

	return &c
}

// Create submits a transaction creating the code smell with the given name and
// metric value. When wait is positive, it then waits up to that long for the
// batch to leave the pending state.
//
// If the batch is still pending when the wait budget is exhausted, or if the
// ledger rejects it, both the result and a failure are returned.
func (c *Client) Create(ctx context.Context, name string, value string, wait time.Duration) (*Result, error) {

	payload := smell.Payload{
		Name:   name,
		Value:  value,
		Action: smell.ActionCreate,
	}

	return c.submit(ctx, wait, payload)
}

// Defaults submits one batch creating all the given default code smells, with
// the same wait semantics as Create.
func (c *Client) Defaults(ctx context.Context, defaults config.Defaults, wait time.Duration) (*Result, error) {

	payloads := make([]smell.Payload, 0, len(defaults))
	for _, entry := range defaults {
		payload := smell.Payload{
			Name:   entry.Name,
			Value:  entry.Value,
			Action: smell.ActionCreate,
		}
		payloads = append(payloads, payload)
	}

	return c.submit(ctx, wait, payloads...)
}

func (c *Client) submit(ctx context.Context, wait time.Duration, payloads ...smell.Payload) (*Result, error) {

	txs := make([]*sawtooth.Transaction, 0, len(payloads))
	for _, payload := range payloads {
		if c.cfg.Validate {
			err := c.validate.Payload(payload)
			if err != nil {
				return nil, fmt.Errorf("invalid code smell %q: %w", payload.Name, err)
			}
		}

		tx, err := c.build.Transaction(payload)
		if err != nil {
			return nil, fmt.Errorf("could not build transaction for code smell %q: %w", payload.Name, err)
		}
		txs = append(txs, tx)

		c.log.Debug().
			Str("name", payload.Name).
			Str("value", payload.Value).
			Str("action", payload.Action).
			Str("transaction_id", tx.ID()).
			Msg("transaction built")
	}

	list, err := c.build.Batch(txs...)
	if err != nil {
		return nil, fmt.Errorf("could not build batch: %w", err)
	}
	data, err := c.encode.EncodeBatchList(*list)
	if err != nil {
		return nil, fmt.Errorf("could not encode batch list: %w", err)
	}

	batchID := list.Batches[0].ID()
	response, err := c.api.Submit(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("could not submit batch: %w", err)
	}

	c.log.Info().Str("batch_id", batchID).Int("transactions", len(txs)).Msg("batch submitted")

	result := Result{
		BatchID:  batchID,
		Response: response,
	}
	if wait <= 0 {
		return &result, nil
	}

	status, err := c.await(ctx, batchID, wait)
	if status != nil {
		result.Status = status.Status
	}
	if err != nil {
		return &result, err
	}

	if status.Status == sawtooth.StatusInvalid {
		return &result, invalid(batchID, status)
	}

	return &result, nil
}

// await polls the status of the batch until it leaves the pending state or the
// wait budget is exhausted. Each request asks the REST API to hold it for the
// remaining budget, rounded up to whole seconds.
func (c *Client) await(ctx context.Context, batchID string, wait time.Duration) (*sawtooth.BatchStatus, error) {

	log := c.log.With().Str("batch_id", batchID).Logger()

	start := c.cfg.Clock.Now()
	last := &sawtooth.BatchStatus{ID: batchID, Status: sawtooth.StatusPending}
	for {
		elapsed := c.cfg.Clock.Since(start)
		if elapsed >= wait {
			return last, failure.Timeout{
				BatchID: batchID,
				Status:  last.Status,
				Wait:    wait,
				Description: failure.NewDescription("wait budget exhausted",
					failure.WithDuration("elapsed", elapsed),
				),
			}
		}

		remaining := uint(math.Ceil((wait - elapsed).Seconds()))
		status, err := c.api.Status(ctx, batchID, remaining)
		if err != nil {
			return last, fmt.Errorf("could not get batch status: %w", err)
		}

		log.Debug().Str("status", status.Status).Uint("remaining", remaining).Msg("batch status polled")

		if !status.Pending() {
			if status.Status == sawtooth.StatusUnknown {
				log.Warn().Msg("ledger does not know the batch")
			}
			return status, nil
		}
		last = status

		if c.cfg.PollInterval <= 0 {
			continue
		}
		timer := c.cfg.Clock.Timer(c.cfg.PollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return last, ctx.Err()
		case <-timer.C:
		}
	}
}

func invalid(batchID string, status *sawtooth.BatchStatus) failure.Invalid {
	fields := []failure.FieldFunc{
		failure.WithInt("invalid_transactions", len(status.InvalidTransactions)),
	}
	if len(status.InvalidTransactions) > 0 {
		first := status.InvalidTransactions[0]
		fields = append(fields,
			failure.WithString("transaction_id", first.ID),
			failure.WithString("message", first.Message),
		)
	}

	return failure.Invalid{
		BatchID:     batchID,
		Description: failure.NewDescription("ledger rejected batch", fields...),
	}
}
