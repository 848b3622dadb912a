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

package models

import "time"

// RawLoginEvent is one audit log row as stored by the authentication flow.
type RawLoginEvent struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	Action    string    `json:"action"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginEvent is a normalized audit event.
type LoginEvent struct {
	Principal string    `json:"principal"`
	Origin    string    `json:"origin"`
	Timestamp time.Time `json:"timestamp"`
	Kind      EventKind `json:"kind"`
}

// MultiSessionAlert flags a principal authenticated from more than one
// origin within the observed window.
type MultiSessionAlert struct {
	Principal       string    `json:"principal"`
	DistinctOrigins []string  `json:"distinct_origins"`
	LastEventTime   time.Time `json:"last_event_time"`
}
