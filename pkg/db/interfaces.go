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


package db

//go:generate mockgen -destination=mock_db.go -package=db github.com/mfreeman451/socradar/pkg/db Service

import (
	"context"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
)

// Service represents all database operations.
type Service interface {
	// Feeds.

	FetchLoginEvents(ctx context.Context, limit int) ([]models.RawLoginEvent, error)
	FetchSensorFeed(ctx context.Context) ([]models.RawSensorRecord, error)

	// History.

	RecordCycle(ctx context.Context, point *models.HistoryPoint) error
	GetHistory(ctx context.Context, limit int) ([]models.HistoryPoint, error)

	// Maintenance.

	CleanOldData(ctx context.Context, retention time.Duration) (int64, error)
	Close() error
}
