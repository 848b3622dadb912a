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

package prtg

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mfreeman451/socradar/pkg/config"
)

const (
	defaultContent   = "sensors"
	defaultColumns   = "objid,device,sensor,status,status_raw,lastvalue,lastvalue_raw,lastcheck"
	defaultCount     = 2500
	defaultRateLimit = 1.0
	defaultTimeout   = 8 * time.Second
)

// Config points the client at a PRTG server.
type Config struct {
	BaseURL            string          `json:"base_url" yaml:"base_url"`
	Username           string          `json:"username" yaml:"username"`
	Passhash           string          `json:"passhash" yaml:"passhash"`
	Content            string          `json:"content,omitempty" yaml:"content,omitempty"`
	Columns            string          `json:"columns,omitempty" yaml:"columns,omitempty"`
	Count              int             `json:"count,omitempty" yaml:"count,omitempty"`
	RateLimit          float64         `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`
	Timeout            config.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	InsecureSkipVerify bool            `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base_url is required", errInvalidConfig)
	}

	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("%w: base_url: %w", errInvalidConfig, err)
	}

	if c.Username == "" || c.Passhash == "" {
		return fmt.Errorf("%w: username and passhash are required", errInvalidConfig)
	}

	if c.Content == "" {
		c.Content = defaultContent
	}

	if c.Columns == "" {
		c.Columns = defaultColumns
	}

	if c.Count <= 0 {
		c.Count = defaultCount
	}

	if c.RateLimit <= 0 {
		c.RateLimit = defaultRateLimit
	}

	if c.Timeout <= 0 {
		c.Timeout = config.Duration(defaultTimeout)
	}

	return nil
}
