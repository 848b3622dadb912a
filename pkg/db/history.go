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

import (
	"context"
	"fmt"

	"github.com/mfreeman451/socradar/pkg/models"
)

// RecordCycle appends one sensor cycle to status_history.
func (d *DB) RecordCycle(ctx context.Context, point *models.HistoryPoint) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO status_history
			(timestamp, devices_up, devices_warning, devices_down, sensors, alerts)
		VALUES (?, ?, ?, ?, ?, ?)`,
		point.Timestamp.UTC(),
		point.DevicesUp,
		point.DevicesWarning,
		point.DevicesDown,
		point.Sensors,
		point.Alerts,
	)
	if err != nil {
		return fmt.Errorf("%w history: %w", ErrFailedToInsert, err)
	}

	return nil
}

// GetHistory returns the newest cycles first.
func (d *DB) GetHistory(ctx context.Context, limit int) ([]models.HistoryPoint, error) {
	if limit <= 0 || limit > maxHistoryPoints {
		limit = maxHistoryPoints
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT timestamp, devices_up, devices_warning, devices_down, sensors, alerts
		FROM status_history
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w history: %w", ErrFailedToQuery, err)
	}
	defer d.closeRows(rows)

	points := make([]models.HistoryPoint, 0)

	for rows.Next() {
		var p models.HistoryPoint

		if err := rows.Scan(&p.Timestamp, &p.DevicesUp, &p.DevicesWarning, &p.DevicesDown, &p.Sensors, &p.Alerts); err != nil {
			return nil, fmt.Errorf("%w history: %w", ErrFailedToScan, err)
		}

		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w history: %w", ErrFailedToQuery, err)
	}

	return points, nil
}
