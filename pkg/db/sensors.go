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
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mfreeman451/socradar/pkg/models"
)

const selectSensorsSQL = `
	SELECT objid, device, sensor, status, lastvalue, lastcheck, timestamp
	FROM sensors
	ORDER BY id`

// FetchSensorFeed reads the sensors table as a raw sensor feed. The status
// column may hold a label or a numeric code.
func (d *DB) FetchSensorFeed(ctx context.Context) ([]models.RawSensorRecord, error) {
	rows, err := d.db.QueryContext(ctx, selectSensorsSQL)
	if err != nil {
		return nil, fmt.Errorf("%w sensors: %w", ErrFailedToQuery, err)
	}
	defer d.closeRows(rows)

	records := make([]models.RawSensorRecord, 0)

	for rows.Next() {
		var objID, device, sensor, status, lastValue, lastCheck, timestamp sql.NullString

		if err := rows.Scan(&objID, &device, &sensor, &status, &lastValue, &lastCheck, &timestamp); err != nil {
			return nil, fmt.Errorf("%w sensor: %w", ErrFailedToScan, err)
		}

		records = append(records, models.RawSensorRecord{
			ObjID:     jsonString(objID),
			Device:    device.String,
			Sensor:    sensor.String,
			Status:    jsonString(status),
			LastValue: lastValue.String,
			LastCheck: lastCheck.String,
			Timestamp: timestamp.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w sensors: %w", ErrFailedToQuery, err)
	}

	return records, nil
}

// jsonString encodes a text column as a JSON string; NULL and empty stay absent.
func jsonString(s sql.NullString) json.RawMessage {
	if !s.Valid || s.String == "" {
		return nil
	}

	b, _ := json.Marshal(s.String)

	return b
}
