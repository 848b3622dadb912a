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
	"fmt"
	"strings"

	"github.com/mfreeman451/socradar/pkg/models"
)

// OriginField selects which audit column identifies the client.
type OriginField string

const (
	OriginUserAgent OriginField = "user_agent"
	OriginIP        OriginField = "ip"
)

// Classify derives the event kind from a free-text action. An action
// containing "logout" is a Logout, one containing "login" is a Login,
// matched case-insensitively; everything else is Other.
func Classify(action string) models.EventKind {
	a := strings.ToLower(action)

	switch {
	case strings.Contains(a, "logout"):
		return models.EventLogout
	case strings.Contains(a, "login"):
		return models.EventLogin
	default:
		return models.EventOther
	}
}

// LoginEvent normalizes one audit row. Rows without a principal or an
// origin are rejected rather than defaulted, so unrelated anonymous rows
// cannot collide with each other.
func LoginEvent(raw *models.RawLoginEvent, field OriginField) (models.LoginEvent, error) {
	principal := strings.TrimSpace(raw.Username)
	if principal == "" {
		return models.LoginEvent{}, fmt.Errorf("%w: event %d: %w", ErrNormalization, raw.ID, errNoPrincipal)
	}

	origin := strings.TrimSpace(raw.UserAgent)
	if field == OriginIP {
		origin = strings.TrimSpace(raw.IP)
	}

	if origin == "" {
		return models.LoginEvent{}, fmt.Errorf("%w: event %d: %w", ErrNormalization, raw.ID, errNoOrigin)
	}

	return models.LoginEvent{
		Principal: principal,
		Origin:    origin,
		Timestamp: raw.CreatedAt.UTC(),
		Kind:      Classify(raw.Action),
	}, nil
}
