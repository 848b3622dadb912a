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
	"fmt"
	"slices"

	"github.com/mfreeman451/socradar/pkg/models"
)

const selectLoginsSQL = `
	SELECT id, user_id, username, action, ip, user_agent, created_at
	FROM user_logs
	ORDER BY created_at DESC, id DESC`

// FetchLoginEvents returns audit rows in chronological order. With limit > 0
// only the newest limit rows are read.
func (d *DB) FetchLoginEvents(ctx context.Context, limit int) ([]models.RawLoginEvent, error) {
	query := selectLoginsSQL

	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"

		args = append(args, limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w user logs: %w", ErrFailedToQuery, err)
	}
	defer d.closeRows(rows)

	events := make([]models.RawLoginEvent, 0)

	for rows.Next() {
		var (
			ev                            models.RawLoginEvent
			userID, username, ip, browser sql.NullString
		)

		if err := rows.Scan(&ev.ID, &userID, &username, &ev.Action, &ip, &browser, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w user log: %w", ErrFailedToScan, err)
		}

		ev.UserID = userID.String
		ev.Username = username.String
		ev.IP = ip.String
		ev.UserAgent = browser.String

		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w user logs: %w", ErrFailedToQuery, err)
	}

	slices.Reverse(events)

	return events, nil
}
