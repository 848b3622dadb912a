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


// Package core pkg/core/server.go wires the engine to its feeds, the
// database, the alert webhooks and the HTTP API.
package core

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mfreeman451/socradar/pkg/alerts"
	"github.com/mfreeman451/socradar/pkg/api"
	"github.com/mfreeman451/socradar/pkg/db"
	"github.com/mfreeman451/socradar/pkg/detect"
	"github.com/mfreeman451/socradar/pkg/engine"
	"github.com/mfreeman451/socradar/pkg/feeds/prtg"
	"github.com/mfreeman451/socradar/pkg/feeds/snmp"
	"github.com/mfreeman451/socradar/pkg/logger"
	"github.com/mfreeman451/socradar/pkg/metrics"
	"github.com/mfreeman451/socradar/pkg/poller"
)

const (
	retentionJobName    = "history-retention"
	retentionJobTimeout = 30 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// Server is the socradar service.
type Server struct {
	config    *Config
	logger    zerolog.Logger
	db        db.Service
	engine    *engine.Engine
	metrics   *metrics.Manager
	notifier  *alerts.Notifier
	apiServer *api.APIServer
	retention *poller.Poller
	listener  net.Listener
	sensors   engine.SensorFeed
	wg        sync.WaitGroup
}

type Option func(*Server)

// WithDatabase uses an existing database instead of opening db_path.
func WithDatabase(d db.Service) Option {
	return func(s *Server) {
		s.db = d
	}
}

// WithSensorFeed overrides the feed selected by sensor_feed.type.
func WithSensorFeed(f engine.SensorFeed) Option {
	return func(s *Server) {
		s.sensors = f
	}
}

// WithListener serves the HTTP API on lis instead of listen_addr.
func WithListener(lis net.Listener) Option {
	return func(s *Server) {
		s.listener = lis
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer builds the service from a validated config.
func NewServer(cfg *Config, opts ...Option) (*Server, error) {
	s := &Server{
		config: cfg,
		logger: logger.WithComponent("core"),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.db == nil && cfg.DBPath != "" {
		database, err := db.New(cfg.DBPath, s.logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errDatabaseError, err)
		}

		s.db = database
	}

	if s.sensors == nil {
		feed, err := s.buildSensorFeed()
		if err != nil {
			s.closeDB()

			return nil, err
		}

		s.sensors = feed
	}

	s.metrics = metrics.NewManager(cfg.Metrics.toModel())

	if err := s.initializeWebhooks(); err != nil {
		s.closeDB()

		return nil, err
	}

	if err := s.buildEngine(); err != nil {
		s.closeDB()

		return nil, err
	}

	if err := s.buildRetention(); err != nil {
		s.closeDB()

		return nil, err
	}

	apiOpts := []api.Option{
		api.WithLogger(s.logger.With().Str("component", "api").Logger()),
		api.WithMetrics(s.metrics),
		api.WithMaxConns(cfg.MaxHTTPConns),
	}

	if cfg.History.IsEnabled() && s.db != nil {
		apiOpts = append(apiOpts, api.WithHistory(s.db))
	}

	s.apiServer = api.NewAPIServer(s.engine, apiOpts...)

	return s, nil
}

func (s *Server) buildSensorFeed() (engine.SensorFeed, error) {
	feedCfg := s.config.SensorFeed
	feedLogger := s.logger.With().Str("feed", feedCfg.Type).Logger()

	switch feedCfg.Type {
	case FeedTypePRTG:
		client, err := prtg.NewClient(*feedCfg.PRTG, feedLogger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errSensorFeed, err)
		}

		return client, nil
	case FeedTypeSNMP:
		feed, err := snmp.NewFeed(*feedCfg.SNMP, snmp.NewClient, feedLogger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errSensorFeed, err)
		}

		return feed, nil
	case FeedTypeDB:
		if s.db == nil {
			return nil, fmt.Errorf("%w: no database", errSensorFeed)
		}

		return s.db, nil
	}

	return nil, fmt.Errorf("%w: %q", errUnknownFeedType, feedCfg.Type)
}

func (s *Server) initializeWebhooks() error {
	services := make([]alerts.AlertService, 0, len(s.config.Webhooks))

	for i, wh := range s.config.Webhooks {
		wh.Template = alerts.TemplateFor(wh.Template)

		alerter, err := alerts.NewWebhookAlerter(wh, s.logger.With().Str("component", "webhook").Logger())
		if err != nil {
			return fmt.Errorf("%w: webhooks[%d]: %w", errWebhookConfig, i, err)
		}

		services = append(services, alerter)
	}

	notifier := alerts.NewNotifier(services, s.logger.With().Str("component", "notifier").Logger())
	if notifier.Len() > 0 {
		s.notifier = notifier
	}

	s.logger.Info().Int("webhooks", notifier.Len()).Msg("Webhooks initialized")

	return nil
}

func (s *Server) buildEngine() error {
	cfg := s.config

	engineCfg := engine.Config{
		SensorPoll: poller.Config{
			Name:        engine.SensorFeedName,
			Interval:    cfg.SensorFeed.Interval.Std(),
			Timeout:     cfg.SensorFeed.Timeout.Std(),
			MaxInFlight: cfg.SensorFeed.MaxInFlight,
		},
		LoginPoll: poller.Config{
			Name:        engine.LoginFeedName,
			Interval:    cfg.LoginFeed.Interval.Std(),
			Timeout:     cfg.LoginFeed.Timeout.Std(),
			MaxInFlight: cfg.LoginFeed.MaxInFlight,
		},
		OriginField: cfg.LoginFeed.OriginField,
		Window: detect.Window{
			MaxEvents: cfg.LoginFeed.Window.MaxEvents,
			MaxAge:    cfg.LoginFeed.Window.MaxAge.Std(),
		},
	}

	opts := []engine.Option{
		engine.WithRecorder(s.metrics),
		engine.WithLogger(s.logger.With().Str("component", "engine").Logger()),
	}

	if s.notifier != nil {
		opts = append(opts, engine.WithNotifier(s.notifier))
	}

	if cfg.History.IsEnabled() && s.db != nil {
		opts = append(opts, engine.WithHistory(s.db))
	}

	var logins engine.LoginFeed

	if cfg.LoginFeed.IsEnabled() && s.db != nil {
		logins = s.db
	}

	e, err := engine.New(engineCfg, s.sensors, logins, opts...)
	if err != nil {
		return err
	}

	s.engine = e

	return nil
}

func (s *Server) buildRetention() error {
	if !s.config.History.IsEnabled() || s.db == nil {
		return nil
	}

	retention := s.config.History.Retention.Std()

	p, err := poller.New(poller.Config{
		Name:     retentionJobName,
		Interval: s.config.History.CleanupInterval.Std(),
		Timeout:  retentionJobTimeout,
		// a slow delete must never overlap with the next one
		MaxInFlight: 1,
	}, func(ctx context.Context) error {
		n, err := s.db.CleanOldData(ctx, retention)
		if err != nil {
			s.logger.Error().Err(err).Msg("History cleanup failed")

			return err
		}

		s.logger.Debug().Int64("rows", n).Msg("History cleanup finished")

		return nil
	}, s.metrics, s.logger)
	if err != nil {
		return err
	}

	s.retention = p

	return nil
}

// Start launches the feeds and the retention job, then serves the HTTP API
// until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info().Str("sensor_feed", s.config.SensorFeed.Type).Bool("login_feed", s.config.LoginFeed.IsEnabled()).
		Msg("Starting socradar")

	if err := s.engine.Start(ctx); err != nil {
		return err
	}

	if s.retention != nil {
		s.wg.Add(1)

		go func() {
			defer s.wg.Done()

			_ = s.retention.Start(ctx)
		}()
	}

	if s.listener != nil {
		return s.apiServer.Serve(ctx, s.listener)
	}

	return s.apiServer.Start(ctx, s.config.ListenAddr)
}

// Stop stops the feeds, waits for queued alerts and closes the database.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error

	if err := s.engine.Stop(ctx); err != nil && !errors.Is(err, engine.ErrNotStarted) {
		errs = append(errs, err)
	}

	s.wg.Wait()

	if s.notifier != nil {
		s.notifier.Wait()
	}

	if err := s.closeDB(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Engine exposes the aggregation engine, mainly for tests.
func (s *Server) Engine() *engine.Engine {
	return s.engine
}

func (s *Server) closeDB() error {
	if s.db == nil {
		return nil
	}

	if err := s.db.Close(); err != nil {
		s.logger.Error().Err(err).Msg("Error closing database")

		return fmt.Errorf("%w: %w", errDatabaseError, err)
	}

	return nil
}
