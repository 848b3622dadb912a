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

// Package models holds the data types shared by the aggregation engine,
// its feeds and the API.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the closed set of sensor and device states. Raw upstream
// representations are converted to a Status at the ingestion boundary and
// never travel further.
type Status int

const (
	StatusUnknown Status = iota
	StatusUp
	StatusWarning
	StatusDown
)

var statusNames = map[Status]string{
	StatusUnknown: "Unknown",
	StatusUp:      "Up",
	StatusWarning: "Warning",
	StatusDown:    "Down",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return statusNames[StatusUnknown]
}

// Severity orders statuses as Down > Warning > Up > Unknown.
func (s Status) Severity() int {
	switch s {
	case StatusDown:
		return 3
	case StatusWarning:
		return 2
	case StatusUp:
		return 1
	case StatusUnknown:
		return 0
	default:
		return 0
	}
}

// MoreSevere reports whether s outranks other.
func (s Status) MoreSevere(other Status) bool {
	return s.Severity() > other.Severity()
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}

	for k, v := range statusNames {
		if strings.EqualFold(v, name) {
			*s = k

			return nil
		}
	}

	*s = StatusUnknown

	return nil
}

// EventKind classifies an audit log action once, at normalization time.
type EventKind string

const (
	EventLogin  EventKind = "login"
	EventLogout EventKind = "logout"
	EventOther  EventKind = "other"
)
