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

// Package engine owns the latest-state store and the published aggregate
// view. It runs the refresh cycles for the sensor and login feeds and
// serves read-only views to any number of concurrent readers.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mfreeman451/socradar/pkg/aggregate"
	"github.com/mfreeman451/socradar/pkg/logger"
	"github.com/mfreeman451/socradar/pkg/metrics"
	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/mfreeman451/socradar/pkg/poller"
	"github.com/mfreeman451/socradar/pkg/store"
	"github.com/rs/zerolog"
)

// Engine is the aggregation and alerting core.
type Engine struct {
	config   Config
	sensors  SensorFeed
	logins   LoginFeed
	notifier Notifier
	history  HistoryRecorder
	recorder metrics.Recorder
	logger   zerolog.Logger
	now      func() time.Time

	store *store.LatestStateStore
	view  atomic.Pointer[models.AggregateView]

	// writeMu serializes publication across both feeds. Readers never take it.
	writeMu       sync.Mutex
	sensorApplied uint64
	loginApplied  uint64

	sensorSeq atomic.Uint64
	loginSeq  atomic.Uint64

	runMu   sync.Mutex
	pollers []*poller.Poller
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates an Engine. logins may be nil, in which case no session
// alerts are ever produced.
func New(cfg Config, sensors SensorFeed, logins LoginFeed, opts ...Option) (*Engine, error) {
	if sensors == nil {
		return nil, ErrNoSensorFeed
	}

	cfg.setDefaults()

	e := &Engine{
		config:  cfg,
		sensors: sensors,
		logins:  logins,
		logger:  logger.WithComponent("engine"),
		now:     time.Now,
		store:   store.New(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.view.Store(models.EmptyView())

	sensorPoller, err := poller.New(cfg.SensorPoll, e.RefreshSensors, e.recorder, e.logger)
	if err != nil {
		return nil, err
	}

	e.pollers = append(e.pollers, sensorPoller)

	if logins != nil {
		loginPoller, err := poller.New(cfg.LoginPoll, e.RefreshLogins, e.recorder, e.logger)
		if err != nil {
			return nil, err
		}

		e.pollers = append(e.pollers, loginPoller)
	}

	return e, nil
}

// Start launches one poller per feed and returns. Each feed runs its first
// cycle immediately.
func (e *Engine) Start(ctx context.Context) error {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	if e.cancel != nil {
		return errStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	for _, p := range e.pollers {
		e.wg.Add(1)

		go func(p *poller.Poller) {
			defer e.wg.Done()

			_ = p.Start(runCtx)
		}(p)
	}

	e.logger.Info().Int("feeds", len(e.pollers)).Msg("Engine started")

	return nil
}

// Stop cancels the pollers and waits for in-flight cycles to finish. The
// last published view stays readable.
func (e *Engine) Stop(ctx context.Context) error {
	e.runMu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.runMu.Unlock()

	if cancel == nil {
		return ErrNotStarted
	}

	cancel()

	done := make(chan struct{})

	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info().Msg("Engine stopped")

		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetAggregateView returns the current published view. It never blocks
// and never returns nil. The view must be treated as read-only.
func (e *Engine) GetAggregateView() *models.AggregateView {
	return e.view.Load()
}

func (e *Engine) GetSensorAlerts() []models.SensorAlert {
	v := e.view.Load()

	return append(make([]models.SensorAlert, 0, len(v.SensorAlerts)), v.SensorAlerts...)
}

func (e *Engine) GetSessionAlerts() []models.MultiSessionAlert {
	v := e.view.Load()

	return append(make([]models.MultiSessionAlert, 0, len(v.SessionAlerts)), v.SessionAlerts...)
}

func (e *Engine) GetDeviceStatuses() []models.DeviceStatus {
	v := e.view.Load()

	return append(make([]models.DeviceStatus, 0, len(v.Devices)), v.Devices...)
}

// GetSensorRecords returns the latest record of every sensor.
func (e *Engine) GetSensorRecords() []models.SensorRecord {
	v := e.view.Load()

	return append(make([]models.SensorRecord, 0, len(v.Sensors)), v.Sensors...)
}

// GetDevice returns one device with its sensors from the current view.
func (e *Engine) GetDevice(name string) (models.DeviceDetail, bool) {
	return aggregate.Detail(e.view.Load().Sensors, name)
}

// Summary is the summary card data of the current view.
func (e *Engine) Summary() models.Summary {
	return e.view.Load().Summarize()
}

// FeedStatuses reports the state of every feed poller.
func (e *Engine) FeedStatuses() []poller.Status {
	out := make([]poller.Status, 0, len(e.pollers))

	for _, p := range e.pollers {
		out = append(out, p.Status())
	}

	return out
}

// HasFeed reports whether a poller with the given name exists.
func (e *Engine) HasFeed(name string) bool {
	for _, p := range e.pollers {
		if p.Name() == name {
			return true
		}
	}

	return false
}
