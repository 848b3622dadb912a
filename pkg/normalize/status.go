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

package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mfreeman451/socradar/pkg/models"
)

// Numeric status codes as reported by the monitoring API.
const (
	codeDown     = 0
	codeCritical = 1
	codeWarning  = 2
	codeUp       = 3
)

// Status converts a raw JSON status value, label or numeric code, into the
// closed enum. Unrecognized labels and codes, fractional or out of range
// codes included, map to StatusUnknown; values
// that are neither strings nor numbers are rejected.
func Status(raw json.RawMessage) (models.Status, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.StatusUnknown, nil
	}

	switch raw[0] {
	case '"':
		var label string
		if err := json.Unmarshal(raw, &label); err != nil {
			return models.StatusUnknown, fmt.Errorf("%w: %w", ErrNormalization, err)
		}

		return StatusLabel(label), nil
	case '{', '[', 't', 'f':
		return models.StatusUnknown, fmt.Errorf("%w: %w: %s", ErrNormalization, errStatusType, raw)
	default:
		code, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return models.StatusUnknown, fmt.Errorf("%w: %w", ErrNormalization, err)
		}

		if code != math.Trunc(code) || code < 0 || code > math.MaxInt32 {
			return models.StatusUnknown, nil
		}

		return StatusCode(int(code)), nil
	}
}

// StatusCode maps numeric codes: 3 Up, 2 Warning, 1 and 0 Down.
func StatusCode(code int) models.Status {
	switch code {
	case codeUp:
		return models.StatusUp
	case codeWarning:
		return models.StatusWarning
	case codeCritical, codeDown:
		return models.StatusDown
	default:
		return models.StatusUnknown
	}
}

// StatusLabel maps a textual status. Only the first word counts, so
// "Down (Acknowledged)" is Down and "Paused (paused by user)" is Unknown.
// Numeric strings are treated as codes.
func StatusLabel(label string) models.Status {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.StatusUnknown
	}

	if code, err := strconv.Atoi(label); err == nil {
		return StatusCode(code)
	}

	words := strings.FieldsFunc(label, func(r rune) bool {
		return r == ' ' || r == '(' || r == ':' || r == ','
	})
	if len(words) == 0 {
		return models.StatusUnknown
	}

	switch strings.ToLower(words[0]) {
	case "up", "ok":
		return models.StatusUp
	case "warning":
		return models.StatusWarning
	case "down", "critical", "error":
		return models.StatusDown
	default:
		return models.StatusUnknown
	}
}
