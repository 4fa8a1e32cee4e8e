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

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/optakt/code-smell/failure"
	"github.com/optakt/code-smell/models/sawtooth"
)

const (
	endpointBatches = "batches"
	endpointStatus  = "batch_status"

	contentTypeBatches = "application/octet-stream"
)

// Client sends batches to the Sawtooth REST API and queries their status.
type Client struct {
	log zerolog.Logger
	cfg Config
}

// New creates a new REST API client.
func New(log zerolog.Logger, options ...Option) *Client {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	c := Client{
		log: log.With().Str("component", "rest_client").Logger(),
		cfg: cfg,
	}

	return &c
}

// Submit posts a serialized batch list and returns the raw response body.
func (c *Client) Submit(ctx context.Context, data []byte) ([]byte, error) {

	body, err := c.send(ctx, http.MethodPost, endpointBatches, nil, data, 0)
	if err != nil {
		return nil, fmt.Errorf("could not submit batches: %w", err)
	}

	c.log.Debug().Int("size", len(data)).Bytes("response", body).Msg("batches submitted")

	return body, nil
}

// Status returns the status of the batch with the given ID. The REST API holds
// the request for up to wait seconds while the batch is pending.
func (c *Client) Status(ctx context.Context, batchID string, wait uint) (*sawtooth.BatchStatus, error) {

	query := url.Values{}
	query.Set("id", batchID)
	query.Set("wait", strconv.FormatUint(uint64(wait), 10))

	body, err := c.send(ctx, http.MethodGet, endpointStatus, query, nil, time.Duration(wait)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("could not get batch status: %w", err)
	}

	var res StatusResponse
	err = json.Unmarshal(body, &res)
	if err != nil {
		return nil, failure.ResponseParse{
			Description: failure.NewDescription("could not decode batch status",
				failure.WithString("batch_id", batchID),
				failure.WithErr(err),
			),
		}
	}
	if len(res.Data) == 0 {
		return nil, failure.ResponseParse{
			Description: failure.NewDescription("batch status response contains no data",
				failure.WithString("batch_id", batchID),
			),
		}
	}

	status := res.Data[0]

	c.log.Debug().Str("batch_id", batchID).Str("status", status.Status).Uint("wait", wait).Msg("batch status retrieved")

	return &status, nil
}

// send executes a request against the given endpoint. Requests that fail
// because the REST API can not be reached are retried with exponential backoff;
// any answer from the REST API is final.
func (c *Client) send(ctx context.Context, method string, endpoint string, query url.Values, data []byte, extra time.Duration) ([]byte, error) {

	address := c.address(endpoint, query)

	var body []byte
	op := func() error {

		reqCtx := ctx
		if c.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			reqCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout+extra)
			defer cancel()
		}

		var reader io.Reader
		if data != nil {
			reader = bytes.NewReader(data)
		}
		req, err := http.NewRequestWithContext(reqCtx, method, address, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("could not create request: %w", err))
		}
		if data != nil {
			req.Header.Set("Content-Type", contentTypeBatches)
		}
		if c.cfg.AuthUser != "" {
			req.SetBasicAuth(c.cfg.AuthUser, c.cfg.AuthPassword)
		}

		res, err := c.cfg.HTTPClient.Do(req)
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if err != nil {
			return failure.Connection{
				URL: address,
				Description: failure.NewDescription("request failed",
					failure.WithString("method", method),
					failure.WithErr(err),
				),
			}
		}
		defer res.Body.Close()

		payload, err := io.ReadAll(res.Body)
		if err != nil {
			return backoff.Permanent(failure.Connection{
				URL: address,
				Description: failure.NewDescription("could not read response body",
					failure.WithInt("status", res.StatusCode),
					failure.WithErr(err),
				),
			})
		}

		if res.StatusCode == http.StatusNotFound {
			return backoff.Permanent(failure.NotFound{
				URL: address,
				Description: failure.NewDescription("REST API returned not found",
					failure.WithString("method", method),
					failure.WithString("reason", reason(res.StatusCode, payload)),
				),
			})
		}
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return backoff.Permanent(failure.HTTP{
				Status: res.StatusCode,
				Reason: reason(res.StatusCode, payload),
				Description: failure.NewDescription("REST API request failed",
					failure.WithString("method", method),
					failure.WithString("url", address),
				),
			})
		}

		body = payload
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Str("url", address).Dur("retry_in", wait).Msg("could not reach REST API, retrying")
	}

	interval := backoff.NewExponentialBackOff()
	interval.InitialInterval = c.cfg.RetryInterval
	retry := backoff.WithContext(backoff.WithMaxRetries(interval, c.cfg.Retries), ctx)

	err := backoff.RetryNotify(op, retry, notify)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// address builds the full URL of an endpoint.
func (c *Client) address(endpoint string, query url.Values) string {
	base := strings.TrimRight(c.cfg.URL, "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	address := base + "/" + endpoint
	if len(query) > 0 {
		address += "?" + query.Encode()
	}
	return address
}

// reason extracts the failure reason from an error body of the REST API,
// falling back to the status text.
func reason(status int, body []byte) string {
	var res ErrorResponse
	err := json.Unmarshal(body, &res)
	if err != nil || res.Error.Title == "" {
		return http.StatusText(status)
	}
	if res.Error.Message == "" {
		return res.Error.Title
	}
	return fmt.Sprintf("%s: %s", res.Error.Title, res.Error.Message)
}
