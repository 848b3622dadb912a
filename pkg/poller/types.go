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

// Package poller runs refresh jobs on a fixed interval.
package poller

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidConfig = errors.New("invalid poller config")

// Job is one refresh cycle. The context carries the per-cycle timeout.
type Job func(ctx context.Context) error

// Status reports how a poller has been doing.
type Status struct {
	Name                string    `json:"name"`
	Interval            string    `json:"interval"`
	LastAttempt         time.Time `json:"last_attempt"`
	LastSuccess         time.Time `json:"last_success"`
	LastError           string    `json:"last_error,omitempty"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	Cycles              uint64    `json:"cycles"`
	Skipped             uint64    `json:"skipped"`
	InFlight            int       `json:"in_flight"`
}
