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


// Package api pkg/api/server.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"

	httpx "github.com/mfreeman451/socradar/pkg/http"
	"github.com/mfreeman451/socradar/pkg/models"
)

func NewAPIServer(view ViewSource, opts ...Option) *APIServer {
	s := &APIServer{
		router:   mux.NewRouter(),
		view:     view,
		logger:   zerolog.Nop(),
		maxConns: defaultMaxConns,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware)
	s.router.Use(httpx.RequestLogger(s.logger))

	s.router.HandleFunc("/health", s.getHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/view", s.getView).Methods(http.MethodGet)
	api.HandleFunc("/status", s.getStatus).Methods(http.MethodGet)
	api.HandleFunc("/devices", s.getDevices).Methods(http.MethodGet)
	api.HandleFunc("/devices/{device}", s.getDevice).Methods(http.MethodGet)
	api.HandleFunc("/sensors", s.getSensors).Methods(http.MethodGet)
	api.HandleFunc("/alerts/sensors", s.getSensorAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alerts/sessions", s.getSessionAlerts).Methods(http.MethodGet)
	api.HandleFunc("/feeds", s.getFeeds).Methods(http.MethodGet)
	api.HandleFunc("/feeds/{name}/metrics", s.getFeedMetrics).Methods(http.MethodGet)
	api.HandleFunc("/history", s.getHistory).Methods(http.MethodGet)
	api.HandleFunc("/ws", s.serveWS).Methods(http.MethodGet)

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
}

// Handler returns the router, mainly for tests.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

// Start listens on addr and serves until ctx is done.
func (s *APIServer) Start(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done, then shuts down gracefully.
func (s *APIServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", lis.Addr().String()).Int("max_conns", s.maxConns).Msg("HTTP API listening")

		errCh <- srv.Serve(netutil.LimitListener(lis, s.maxConns))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP API: %w", err)
	}

	return nil
}

func (s *APIServer) getHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *APIServer) getView(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.view.GetAggregateView())
}

func (s *APIServer) getStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.view.GetAggregateView().Summarize())
}

func (s *APIServer) getDevices(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.view.GetAggregateView().Devices)
}

func (s *APIServer) getDevice(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["device"]

	detail, ok := s.view.GetDevice(name)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", errDeviceNotFound, name))

		return
	}

	s.writeJSON(w, http.StatusOK, detail)
}

func (s *APIServer) getSensors(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.view.GetAggregateView().Sensors)
}

func (s *APIServer) getSensorAlerts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.view.GetAggregateView().SensorAlerts)
}

func (s *APIServer) getSessionAlerts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.view.GetAggregateView().SessionAlerts)
}

func (s *APIServer) getFeeds(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.view.FeedStatuses())
}

func (s *APIServer) getFeedMetrics(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if !s.view.HasFeed(name) {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", errFeedNotFound, name))

		return
	}

	points := []models.CyclePoint{}

	if s.metrics != nil {
		if p := s.metrics.GetMetrics(name); p != nil {
			points = p
		}
	}

	s.writeJSON(w, http.StatusOK, points)
}

func (s *APIServer) getHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeError(w, http.StatusNotFound, errHistoryDisabled)

		return
	}

	limit := 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", errInvalidLimit, raw))

			return
		}

		limit = n
	}

	points, err := s.history.GetHistory(r.Context(), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read history")
		s.writeError(w, http.StatusInternalServerError, err)

		return
	}

	s.writeJSON(w, http.StatusOK, points)
}

// viewPart returns the named part of the current view.
func (s *APIServer) viewPart(name string) (interface{}, error) {
	view := s.view.GetAggregateView()

	switch name {
	case "view":
		return view, nil
	case "status":
		return view.Summarize(), nil
	case "devices":
		return view.Devices, nil
	case "sensors":
		return view.Sensors, nil
	case "sensor_alerts":
		return view.SensorAlerts, nil
	case "session_alerts":
		return view.SessionAlerts, nil
	}

	return nil, fmt.Errorf("%w: %q", errUnknownView, name)
}

func (s *APIServer) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Error encoding response")
	}
}

func (s *APIServer) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
