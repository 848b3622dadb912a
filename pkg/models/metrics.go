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

// Package models pkg/models/metrics.go
package models

import "time"

// CyclePoint is one refresh cycle as kept in the per-feed ring buffer.
type CyclePoint struct {
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
	Feed      string        `json:"feed"`
	Failed    bool          `json:"failed"`
}

type MetricsConfig struct {
	Enabled   bool `json:"enabled" yaml:"enabled"`
	Retention int  `json:"retention" yaml:"retention"`
}
