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
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mfreeman451/socradar/pkg/aggregate"
	"github.com/mfreeman451/socradar/pkg/detect"
	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/mfreeman451/socradar/pkg/normalize"
	"github.com/rs/zerolog"
)

// RefreshSensors runs one sensor cycle: fetch, normalize, ingest and
// publish. A fetch failure leaves the published view untouched. A cycle
// that finishes after a later-started cycle was already applied is
// discarded.
func (e *Engine) RefreshSensors(ctx context.Context) error {
	seq := e.sensorSeq.Add(1)
	cycleID := uuid.NewString()
	started := time.Now()

	log := e.logger.With().
		Str("feed", SensorFeedName).
		Uint64("seq", seq).
		Str("cycle_id", cycleID).
		Logger()

	raw, err := e.sensors.FetchSensorFeed(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFetch, SensorFeedName, err)
	}

	records, dropped := normalizeSensors(raw, &log)
	if e.recorder != nil {
		e.recorder.RecordsDropped(SensorFeedName, dropped)
	}

	prev, next, ok := e.applySensors(seq, cycleID, records)
	if !ok {
		e.cycleDiscarded(SensorFeedName, &log)

		return nil
	}

	e.afterPublish(next)

	if e.notifier != nil {
		raised, cleared := sensorTransitions(prev.SensorAlerts, next.SensorAlerts)
		if len(raised) > 0 || len(cleared) > 0 {
			e.notifier.SensorAlertsChanged(ctx, raised, cleared)
		}
	}

	if e.history != nil {
		point := historyPoint(next)
		if err := e.history.RecordCycle(ctx, &point); err != nil {
			log.Warn().Err(err).Msg("Failed to record cycle history")
		}
	}

	log.Debug().
		Int("records", len(raw)).
		Int("dropped", dropped).
		Int("devices", len(next.Devices)).
		Int("alerts", len(next.SensorAlerts)).
		Dur("duration", time.Since(started)).
		Msg("Sensor cycle published")

	return nil
}

// RefreshLogins runs one login cycle and republishes the view with fresh
// session alerts. Sensor data in the view is carried over unchanged.
func (e *Engine) RefreshLogins(ctx context.Context) error {
	if e.logins == nil {
		return nil
	}

	seq := e.loginSeq.Add(1)
	cycleID := uuid.NewString()
	started := time.Now()

	log := e.logger.With().
		Str("feed", LoginFeedName).
		Uint64("seq", seq).
		Str("cycle_id", cycleID).
		Logger()

	raw, err := e.logins.FetchLoginEvents(ctx, e.config.Window.MaxEvents)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFetch, LoginFeedName, err)
	}

	events, dropped := normalizeLogins(raw, e.config.OriginField, &log)
	if e.recorder != nil {
		e.recorder.RecordsDropped(LoginFeedName, dropped)
	}

	alerts := detect.MultiSession(events, e.config.Window, e.now())

	prev, next, ok := e.applyLogins(seq, cycleID, alerts)
	if !ok {
		e.cycleDiscarded(LoginFeedName, &log)

		return nil
	}

	e.afterPublish(next)

	if e.notifier != nil {
		raised, cleared := sessionTransitions(prev.SessionAlerts, next.SessionAlerts)
		if len(raised) > 0 || len(cleared) > 0 {
			e.notifier.SessionAlertsChanged(ctx, raised, cleared)
		}
	}

	log.Debug().
		Int("records", len(raw)).
		Int("dropped", dropped).
		Int("alerts", len(alerts)).
		Dur("duration", time.Since(started)).
		Msg("Login cycle published")

	return nil
}

// applySensors ingests records and swaps in a view built from them, unless
// a cycle with a higher sequence number has already been applied.
func (e *Engine) applySensors(seq uint64, cycleID string, records []models.SensorRecord) (prev, next *models.AggregateView, ok bool) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if seq <= e.sensorApplied {
		return nil, nil, false
	}

	e.sensorApplied = seq

	latest := e.store.Ingest(records).Records()
	devices := aggregate.Devices(latest)
	prev = e.view.Load()

	next = &models.AggregateView{
		Devices:            devices,
		Sensors:            latest,
		SensorAlerts:       detect.SensorHealth(latest),
		SessionAlerts:      prev.SessionAlerts,
		CountsByStatus:     aggregate.Counts(devices),
		SensorCounts:       aggregate.SensorCounts(latest),
		TotalSensors:       len(latest),
		MaxSensorsByDevice: aggregate.MaxSensors(devices),
		SensorCycle:        models.CycleInfo{Seq: seq, CycleID: cycleID, CompletedAt: e.now()},
		LoginCycle:         prev.LoginCycle,
	}

	e.view.Store(next)

	return prev, next, true
}

func (e *Engine) applyLogins(seq uint64, cycleID string, alerts []models.MultiSessionAlert) (prev, next *models.AggregateView, ok bool) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if seq <= e.loginApplied {
		return nil, nil, false
	}

	e.loginApplied = seq
	prev = e.view.Load()

	v := *prev
	v.SessionAlerts = alerts
	v.LoginCycle = models.CycleInfo{Seq: seq, CycleID: cycleID, CompletedAt: e.now()}
	next = &v

	e.view.Store(next)

	return prev, next, true
}

func (e *Engine) afterPublish(v *models.AggregateView) {
	if e.recorder != nil {
		e.recorder.SetView(v)
	}
}

func (e *Engine) cycleDiscarded(feed string, log *zerolog.Logger) {
	if e.recorder != nil {
		e.recorder.CycleDiscarded(feed)
	}

	log.Info().Msg("Discarding cycle, a newer one was already applied")
}

func normalizeSensors(raw []models.RawSensorRecord, log *zerolog.Logger) ([]models.SensorRecord, int) {
	records := make([]models.SensorRecord, 0, len(raw))
	dropped := 0

	for i := range raw {
		rec, err := normalize.Sensor(&raw[i])
		if err != nil {
			dropped++

			log.Warn().Err(err).Int("index", i).Msg("Dropping sensor record")

			continue
		}

		records = append(records, rec)
	}

	return records, dropped
}

func normalizeLogins(raw []models.RawLoginEvent, field normalize.OriginField, log *zerolog.Logger) ([]models.LoginEvent, int) {
	events := make([]models.LoginEvent, 0, len(raw))
	dropped := 0

	for i := range raw {
		ev, err := normalize.LoginEvent(&raw[i], field)
		if err != nil {
			dropped++

			log.Debug().Err(err).Int64("id", raw[i].ID).Msg("Excluding login event")

			continue
		}

		events = append(events, ev)
	}

	return events, dropped
}

func historyPoint(v *models.AggregateView) models.HistoryPoint {
	return models.HistoryPoint{
		Timestamp:      v.SensorCycle.CompletedAt,
		DevicesUp:      v.CountsByStatus.Up,
		DevicesWarning: v.CountsByStatus.Warning,
		DevicesDown:    v.CountsByStatus.Down,
		Sensors:        v.TotalSensors,
		Alerts:         len(v.SensorAlerts),
	}
}

// sensorTransitions compares two alert lists by entity key. An alert whose
// status changed, say Warning to Down, counts as raised again.
func sensorTransitions(prev, next []models.SensorAlert) (raised, cleared []models.SensorAlert) {
	before := make(map[string]models.Status, len(prev))
	for i := range prev {
		before[prev[i].EntityKey] = prev[i].Status
	}

	after := make(map[string]struct{}, len(next))

	for i := range next {
		after[next[i].EntityKey] = struct{}{}

		if status, ok := before[next[i].EntityKey]; !ok || status != next[i].Status {
			raised = append(raised, next[i])
		}
	}

	for i := range prev {
		if _, ok := after[prev[i].EntityKey]; !ok {
			cleared = append(cleared, prev[i])
		}
	}

	return raised, cleared
}

func sessionTransitions(prev, next []models.MultiSessionAlert) (raised, cleared []models.MultiSessionAlert) {
	before := make(map[string]struct{}, len(prev))
	for i := range prev {
		before[prev[i].Principal] = struct{}{}
	}

	after := make(map[string]struct{}, len(next))

	for i := range next {
		after[next[i].Principal] = struct{}{}

		if _, ok := before[next[i].Principal]; !ok {
			raised = append(raised, next[i])
		}
	}

	for i := range prev {
		if _, ok := after[prev[i].Principal]; !ok {
			cleared = append(cleared, prev[i])
		}
	}

	return raised, cleared
}
