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

package poller

import (
	"fmt"
	"time"
)

const (
	defaultTimeout     = 8 * time.Second
	defaultMaxInFlight = 2
)

// Config describes one periodic refresh job.
type Config struct {
	Name        string
	Interval    time.Duration
	Timeout     time.Duration
	MaxInFlight int
}

// Validate checks the config and fills defaults.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}

	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval for %s must be positive", ErrInvalidConfig, c.Name)
	}

	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}

	if c.MaxInFlight <= 0 {
		c.MaxInFlight = defaultMaxInFlight
	}

	return nil
}
