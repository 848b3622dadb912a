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

package metrics

import (
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
)

//go:generate mockgen -destination=mock_metrics.go -package=metrics github.com/mfreeman451/socradar/pkg/metrics Recorder,CycleStore

// CycleStore keeps the most recent cycle points of one feed.
type CycleStore interface {
	Add(point models.CyclePoint)
	GetPoints() []models.CyclePoint
	GetLastPoint() *models.CyclePoint
}

// Recorder receives refresh cycle outcomes from the pollers and the engine.
type Recorder interface {
	ObserveCycle(feed string, started time.Time, duration time.Duration, err error)
	CycleSkipped(feed string)
	CycleDiscarded(feed string)
	RecordsDropped(feed string, n int)
	SetView(view *models.AggregateView)
}
