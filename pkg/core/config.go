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


package core

import (
	"fmt"
	"time"

	"github.com/mfreeman451/socradar/pkg/alerts"
	"github.com/mfreeman451/socradar/pkg/config"
	"github.com/mfreeman451/socradar/pkg/feeds/prtg"
	"github.com/mfreeman451/socradar/pkg/feeds/snmp"
	"github.com/mfreeman451/socradar/pkg/logger"
	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/mfreeman451/socradar/pkg/normalize"
)

const (
	FeedTypePRTG = "prtg"
	FeedTypeSNMP = "snmp"
	FeedTypeDB   = "db"

	defaultListenAddr      = ":8090"
	defaultMaxHTTPConns    = 256
	defaultSensorInterval  = 10 * time.Second
	defaultLoginInterval   = 30 * time.Second
	defaultFeedTimeout     = 8 * time.Second
	defaultMaxInFlight     = 2
	defaultRetention       = 720 * time.Hour
	defaultCleanupInterval = time.Hour
	defaultMetricsPoints   = 100
)

// Config is the service configuration file.
type Config struct {
	ListenAddr   string                 `json:"listen_addr" yaml:"listen_addr"`
	GRPCAddr     string                 `json:"grpc_addr,omitempty" yaml:"grpc_addr,omitempty"`
	DBPath       string                 `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	MaxHTTPConns int                    `json:"max_http_conns,omitempty" yaml:"max_http_conns,omitempty"`
	SensorFeed   SensorFeedConfig       `json:"sensor_feed" yaml:"sensor_feed"`
	LoginFeed    LoginFeedConfig        `json:"login_feed" yaml:"login_feed"`
	History      HistoryConfig          `json:"history" yaml:"history"`
	Webhooks     []alerts.WebhookConfig `json:"webhooks,omitempty" yaml:"webhooks,omitempty"`
	Metrics      MetricsConfig          `json:"metrics" yaml:"metrics"`
	Logging      *logger.Config         `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// SensorFeedConfig selects and schedules the sensor source.
type SensorFeedConfig struct {
	Type        string          `json:"type" yaml:"type"`
	Interval    config.Duration `json:"interval,omitempty" yaml:"interval,omitempty"`
	Timeout     config.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	MaxInFlight int             `json:"max_in_flight,omitempty" yaml:"max_in_flight,omitempty"`
	PRTG        *prtg.Config    `json:"prtg,omitempty" yaml:"prtg,omitempty"`
	SNMP        *snmp.Config    `json:"snmp,omitempty" yaml:"snmp,omitempty"`
}

// LoginFeedConfig schedules the audit log feed.
type LoginFeedConfig struct {
	// Enabled defaults to true when a database is configured.
	Enabled     *bool                 `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Interval    config.Duration       `json:"interval,omitempty" yaml:"interval,omitempty"`
	Timeout     config.Duration       `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	MaxInFlight int                   `json:"max_in_flight,omitempty" yaml:"max_in_flight,omitempty"`
	OriginField normalize.OriginField `json:"origin_field,omitempty" yaml:"origin_field,omitempty"`
	Window      WindowConfig          `json:"window" yaml:"window"`
}

// WindowConfig bounds the events the multi-session detector sees.
type WindowConfig struct {
	MaxEvents int             `json:"max_events,omitempty" yaml:"max_events,omitempty"`
	MaxAge    config.Duration `json:"max_age,omitempty" yaml:"max_age,omitempty"`
}

type HistoryConfig struct {
	// Enabled defaults to true when a database is configured.
	Enabled         *bool           `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Retention       config.Duration `json:"retention,omitempty" yaml:"retention,omitempty"`
	CleanupInterval config.Duration `json:"cleanup_interval,omitempty" yaml:"cleanup_interval,omitempty"`
}

type MetricsConfig struct {
	// Enabled defaults to true.
	Enabled   *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Retention int   `json:"retention,omitempty" yaml:"retention,omitempty"`
}

// Validate implements config.Validator and fills defaults.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.MaxHTTPConns <= 0 {
		c.MaxHTTPConns = defaultMaxHTTPConns
	}

	if err := c.SensorFeed.validate(c.DBPath); err != nil {
		return err
	}

	if err := c.LoginFeed.validate(c.DBPath); err != nil {
		return err
	}

	if err := c.History.validate(c.DBPath); err != nil {
		return err
	}

	c.Metrics.setDefaults()

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	} else {
		c.Logging.MergeDefaults()
	}

	return nil
}

func (s *SensorFeedConfig) validate(dbPath string) error {
	if s.Interval <= 0 {
		s.Interval = config.Duration(defaultSensorInterval)
	}

	if s.Timeout <= 0 {
		s.Timeout = config.Duration(defaultFeedTimeout)
	}

	if s.MaxInFlight <= 0 {
		s.MaxInFlight = defaultMaxInFlight
	}

	switch s.Type {
	case FeedTypePRTG:
		if s.PRTG == nil {
			return fmt.Errorf("%w: sensor_feed.prtg is required for type %q", errInvalidConfig, s.Type)
		}

		// The HTTP timeout never outlives the fetch.
		if s.PRTG.Timeout <= 0 || s.PRTG.Timeout > s.Timeout {
			s.PRTG.Timeout = s.Timeout
		}

		if err := s.PRTG.Validate(); err != nil {
			return err
		}
	case FeedTypeSNMP:
		if s.SNMP == nil {
			return fmt.Errorf("%w: sensor_feed.snmp is required for type %q", errInvalidConfig, s.Type)
		}

		if err := s.SNMP.Validate(); err != nil {
			return err
		}

		for i := range s.SNMP.Targets {
			target := &s.SNMP.Targets[i]
			if budget := target.PollBudget(); budget >= s.Timeout.Std() {
				return fmt.Errorf("%w: snmp target %s needs up to %s (timeout x (retries+1)), sensor_feed.timeout is %s",
					errInvalidConfig, target.Name, budget, s.Timeout.Std())
			}
		}
	case FeedTypeDB:
		if dbPath == "" {
			return fmt.Errorf("%w: db_path is required for sensor feed type %q", errInvalidConfig, s.Type)
		}
	case "":
		return fmt.Errorf("%w: sensor_feed.type is required", errInvalidConfig)
	default:
		return fmt.Errorf("%w: %q", errUnknownFeedType, s.Type)
	}

	return nil
}

// IsEnabled reports the effective setting after Validate.
func (l *LoginFeedConfig) IsEnabled() bool {
	return l.Enabled != nil && *l.Enabled
}

func (l *LoginFeedConfig) validate(dbPath string) error {
	if l.Enabled == nil {
		enabled := dbPath != ""
		l.Enabled = &enabled
	}

	if !*l.Enabled {
		return nil
	}

	if dbPath == "" {
		return fmt.Errorf("%w: db_path is required for the login feed", errInvalidConfig)
	}

	switch l.OriginField {
	case "":
		l.OriginField = normalize.OriginUserAgent
	case normalize.OriginUserAgent, normalize.OriginIP:
	default:
		return fmt.Errorf("%w: login_feed.origin_field %q", errInvalidConfig, l.OriginField)
	}

	if l.Window.MaxEvents < 0 || l.Window.MaxAge < 0 {
		return fmt.Errorf("%w: login_feed.window must not be negative", errInvalidConfig)
	}

	if l.Interval <= 0 {
		l.Interval = config.Duration(defaultLoginInterval)
	}

	if l.Timeout <= 0 {
		l.Timeout = config.Duration(defaultFeedTimeout)
	}

	if l.MaxInFlight <= 0 {
		l.MaxInFlight = defaultMaxInFlight
	}

	return nil
}

// IsEnabled reports the effective setting after Validate.
func (h *HistoryConfig) IsEnabled() bool {
	return h.Enabled != nil && *h.Enabled
}

func (h *HistoryConfig) validate(dbPath string) error {
	if h.Enabled == nil {
		enabled := dbPath != ""
		h.Enabled = &enabled
	}

	if !*h.Enabled {
		return nil
	}

	if dbPath == "" {
		return fmt.Errorf("%w: db_path is required for history", errInvalidConfig)
	}

	if h.Retention <= 0 {
		h.Retention = config.Duration(defaultRetention)
	}

	if h.CleanupInterval <= 0 {
		h.CleanupInterval = config.Duration(defaultCleanupInterval)
	}

	return nil
}

func (m *MetricsConfig) setDefaults() {
	if m.Enabled == nil {
		enabled := true
		m.Enabled = &enabled
	}

	if m.Retention <= 0 {
		m.Retention = defaultMetricsPoints
	}
}

func (m *MetricsConfig) toModel() models.MetricsConfig {
	return models.MetricsConfig{
		Enabled:   m.Enabled != nil && *m.Enabled,
		Retention: m.Retention,
	}
}
