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

package engine

import (
	"time"

	"github.com/mfreeman451/socradar/pkg/detect"
	"github.com/mfreeman451/socradar/pkg/metrics"
	"github.com/mfreeman451/socradar/pkg/normalize"
	"github.com/mfreeman451/socradar/pkg/poller"
	"github.com/rs/zerolog"
)

const (
	SensorFeedName = "sensors"
	LoginFeedName  = "logins"

	defaultSensorInterval = 10 * time.Second
	defaultLoginInterval  = 30 * time.Second
)

// Config holds the schedule and detector settings.
type Config struct {
	SensorPoll  poller.Config
	LoginPoll   poller.Config
	OriginField normalize.OriginField
	Window      detect.Window
}

func (c *Config) setDefaults() {
	if c.SensorPoll.Name == "" {
		c.SensorPoll.Name = SensorFeedName
	}

	if c.SensorPoll.Interval <= 0 {
		c.SensorPoll.Interval = defaultSensorInterval
	}

	if c.LoginPoll.Name == "" {
		c.LoginPoll.Name = LoginFeedName
	}

	if c.LoginPoll.Interval <= 0 {
		c.LoginPoll.Interval = defaultLoginInterval
	}

	if c.OriginField == "" {
		c.OriginField = normalize.OriginUserAgent
	}
}

// Option customizes an Engine.
type Option func(*Engine)

func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func WithHistory(h HistoryRecorder) Option {
	return func(e *Engine) { e.history = h }
}

func WithRecorder(r metrics.Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock replaces time.Now, used for window evaluation and cycle stamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}
