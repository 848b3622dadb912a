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
	"time"
)

// CleanOldData removes history rows older than the retention period and
// returns how many were deleted.
func (d *DB) CleanOldData(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := d.now().Add(-retention).UTC()

	res, err := d.db.ExecContext(ctx, "DELETE FROM status_history WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w status history: %w", ErrFailedToClean, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w status history: %w", ErrFailedToClean, err)
	}

	if n > 0 {
		d.logger.Debug().Int64("rows", n).Time("cutoff", cutoff).Msg("cleaned status history")
	}

	return n, nil
}
