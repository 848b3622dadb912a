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

package engine

import (
	"context"

	"github.com/mfreeman451/socradar/pkg/models"
)

//go:generate mockgen -destination=mock_engine.go -package=engine github.com/mfreeman451/socradar/pkg/engine SensorFeed,LoginFeed,Notifier,HistoryRecorder

// SensorFeed fetches the current upstream sensor table.
type SensorFeed interface {
	FetchSensorFeed(ctx context.Context) ([]models.RawSensorRecord, error)
}

// LoginFeed reads the audit log. limit <= 0 means every retained row;
// otherwise the newest limit rows are returned.
type LoginFeed interface {
	FetchLoginEvents(ctx context.Context, limit int) ([]models.RawLoginEvent, error)
}

// Notifier is told which alerts appeared and which went away after a
// cycle has been published.
type Notifier interface {
	SensorAlertsChanged(ctx context.Context, raised, cleared []models.SensorAlert)
	SessionAlertsChanged(ctx context.Context, raised, cleared []models.MultiSessionAlert)
}

// HistoryRecorder persists one point per published sensor cycle.
type HistoryRecorder interface {
	RecordCycle(ctx context.Context, point *models.HistoryPoint) error
}
