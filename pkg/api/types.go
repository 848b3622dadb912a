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

import (
	"errors"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	defaultMaxConns   = 256
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	wsReadLimit       = 512
	wsWriteTimeout    = 10 * time.Second
)

var (
	errUnknownView     = errors.New("unknown view")
	errHistoryDisabled = errors.New("history is disabled")
	errInvalidLimit    = errors.New("invalid limit")
	errDeviceNotFound  = errors.New("device not found")
	errFeedNotFound    = errors.New("feed not found")
)

// APIServer serves the aggregate view over HTTP and websocket.
type APIServer struct {
	router   *mux.Router
	view     ViewSource
	history  HistorySource
	metrics  FeedMetrics
	upgrader websocket.Upgrader
	logger   zerolog.Logger
	maxConns int
}

type Option func(*APIServer)

// WithHistory enables /api/history.
func WithHistory(h HistorySource) Option {
	return func(s *APIServer) {
		s.history = h
	}
}

// WithMetrics enables /metrics and the per-feed cycle points.
func WithMetrics(m FeedMetrics) Option {
	return func(s *APIServer) {
		s.metrics = m
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *APIServer) {
		s.logger = logger
	}
}

// WithMaxConns caps concurrent connections; zero or less keeps the default.
func WithMaxConns(n int) Option {
	return func(s *APIServer) {
		if n > 0 {
			s.maxConns = n
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}
