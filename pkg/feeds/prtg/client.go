/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package prtg reads sensor tables from the PRTG HTTP API.
package prtg

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const tablePath = "/api/table.json"

// Client implements engine.SensorFeed over table.json.
type Client struct {
	config  Config
	http    *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config, logger zerolog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed PRTG installs
	}

	return &Client{
		config: cfg,
		http: &http.Client{
			Timeout:   cfg.Timeout.Std(),
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		logger:  logger.With().Str("prtg", cfg.BaseURL).Logger(),
	}, nil
}

// FetchSensorFeed returns the rows of the configured table.
func (c *Client) FetchSensorFeed(ctx context.Context) ([]models.RawSensorRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query prtg: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, fmt.Errorf("%w: status=%d body=%s", errStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var table map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode prtg response: %w", err)
	}

	rows, ok := table[c.config.Content]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errMissingTable, c.config.Content)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rows, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s rows: %w", c.config.Content, err)
	}

	records := c.decodeRows(items)

	c.logger.Debug().Int("rows", len(records)).Int("skipped", len(items)-len(records)).Msg("Fetched prtg table")

	return records, nil
}

// decodeRows decodes each row on its own so a row with unexpected field
// types is dropped without losing the rest of the table.
func (c *Client) decodeRows(items []json.RawMessage) []models.RawSensorRecord {
	records := make([]models.RawSensorRecord, 0, len(items))

	for i, item := range items {
		var rec models.RawSensorRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			c.logger.Warn().Err(err).Int("row", i).Msg("Skipping malformed prtg row")

			continue
		}

		records = append(records, rec)
	}

	return records
}

func (c *Client) tableURL() string {
	q := url.Values{}
	q.Set("content", c.config.Content)
	q.Set("columns", c.config.Columns)
	q.Set("count", strconv.Itoa(c.config.Count))
	q.Set("username", c.config.Username)
	q.Set("passhash", c.config.Passhash)

	return strings.TrimRight(c.config.BaseURL, "/") + tablePath + "?" + q.Encode()
}
