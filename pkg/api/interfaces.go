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


package api

//go:generate mockgen -destination=mock_api.go -package=api github.com/mfreeman451/socradar/pkg/api ViewSource,HistorySource,FeedMetrics

import (
	"context"
	"net/http"

	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/mfreeman451/socradar/pkg/poller"
)

// ViewSource is the read side of the engine.
type ViewSource interface {
	GetAggregateView() *models.AggregateView
	GetDevice(name string) (models.DeviceDetail, bool)
	FeedStatuses() []poller.Status
	HasFeed(name string) bool
}

// HistorySource returns recorded sensor cycles, newest first.
type HistorySource interface {
	GetHistory(ctx context.Context, limit int) ([]models.HistoryPoint, error)
}

// FeedMetrics exposes per-feed cycle points and the Prometheus registry.
type FeedMetrics interface {
	GetMetrics(feed string) []models.CyclePoint
	Handler() http.Handler
}
