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

package poller

import (
	"context"
	"sync"
	"time"

	"github.com/mfreeman451/socradar/pkg/metrics"
	"github.com/rs/zerolog"
)

// Poller runs a Job immediately and then on every tick. A tick starts a
// new cycle even if earlier cycles are still running, up to MaxInFlight;
// beyond that the tick is skipped. A failing or slow cycle never stops
// the schedule.
type Poller struct {
	config   Config
	job      Job
	recorder metrics.Recorder
	logger   zerolog.Logger
	sem      chan struct{}
	wg       sync.WaitGroup

	mu     sync.RWMutex
	status Status
}

// New creates a Poller. recorder may be nil.
func New(cfg Config, job Job, recorder metrics.Recorder, logger zerolog.Logger) (*Poller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Poller{
		config:   cfg,
		job:      job,
		recorder: recorder,
		logger:   logger.With().Str("feed", cfg.Name).Logger(),
		sem:      make(chan struct{}, cfg.MaxInFlight),
		status: Status{
			Name:     cfg.Name,
			Interval: cfg.Interval.String(),
		},
	}, nil
}

func (p *Poller) Name() string {
	return p.config.Name
}

// Start runs the schedule until ctx is canceled, then waits for in-flight
// cycles to return.
func (p *Poller) Start(ctx context.Context) error {
	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	p.logger.Info().Dur("interval", p.config.Interval).Msg("Starting poller")

	p.spawn(ctx)

	for {
		select {
		case <-ctx.Done():
			p.wg.Wait()
			p.logger.Info().Msg("Poller stopped")

			return ctx.Err()
		case <-ticker.C:
			p.spawn(ctx)
		}
	}
}

// RunOnce runs a single cycle synchronously, bypassing the in-flight bound.
func (p *Poller) RunOnce(ctx context.Context) error {
	p.wg.Add(1)
	defer p.wg.Done()

	return p.run(ctx)
}

// Wait blocks until all started cycles have returned.
func (p *Poller) Wait() {
	p.wg.Wait()
}

func (p *Poller) spawn(ctx context.Context) {
	select {
	case p.sem <- struct{}{}:
	default:
		p.mu.Lock()
		p.status.Skipped++
		p.mu.Unlock()

		if p.recorder != nil {
			p.recorder.CycleSkipped(p.config.Name)
		}

		p.logger.Warn().Int("max_in_flight", p.config.MaxInFlight).Msg("Skipping tick, too many cycles in flight")

		return
	}

	p.wg.Add(1)

	go func() {
		defer p.wg.Done()
		defer func() { <-p.sem }()

		_ = p.run(ctx)
	}()
}

func (p *Poller) run(ctx context.Context) error {
	cycleCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	started := time.Now()

	p.mu.Lock()
	p.status.LastAttempt = started
	p.status.InFlight++
	p.mu.Unlock()

	err := p.job(cycleCtx)
	elapsed := time.Since(started)

	p.mu.Lock()
	p.status.InFlight--
	p.status.Cycles++

	if err != nil {
		p.status.LastError = err.Error()
		p.status.ConsecutiveFailures++
	} else {
		p.status.LastSuccess = started
		p.status.LastError = ""
		p.status.ConsecutiveFailures = 0
	}
	p.mu.Unlock()

	if p.recorder != nil {
		p.recorder.ObserveCycle(p.config.Name, started, elapsed, err)
	}

	if err != nil {
		p.logger.Error().Err(err).Dur("duration", elapsed).Msg("Refresh cycle failed")
	}

	return err
}

// Status returns a copy of the current status.
func (p *Poller) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.status
}
