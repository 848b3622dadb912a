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

// Package snmp builds a sensor feed from SNMP GETs against configured
// devices.
package snmp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/rs/zerolog"
)

// Feed implements engine.SensorFeed. Every configured OID becomes one
// sensor on the device named after its target. An unreachable target
// reports all of its sensors as Down.
type Feed struct {
	config  Config
	factory ClientFactory
	logger  zerolog.Logger
	now     func() time.Time
}

// NewFeed validates cfg. A nil factory selects NewClient.
func NewFeed(cfg Config, factory ClientFactory, logger zerolog.Logger) (*Feed, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if factory == nil {
		factory = NewClient
	}

	return &Feed{
		config:  cfg,
		factory: factory,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// deadlineShare is the part of the cycle deadline a single target may use.
const deadlineShare = 0.9

// FetchSensorFeed polls every target concurrently. Each target runs under
// its own deadline, so a dead agent turns into Down rows for that target
// while the others still report. Targets still pending when ctx ends are
// reported Down too; the call fails only when nothing was collected.
func (f *Feed) FetchSensorFeed(ctx context.Context) ([]models.RawSensorRecord, error) {
	var (
		mu      sync.Mutex
		results = make([][]models.RawSensorRecord, len(f.config.Targets))
		wg      sync.WaitGroup
	)

	for i := range f.config.Targets {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			rows := f.pollTarget(ctx, &f.config.Targets[i])

			mu.Lock()
			results[i] = rows
			mu.Unlock()
		}(i)
	}

	done := make(chan struct{})

	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}

	mu.Lock()
	defer mu.Unlock()

	var (
		records   []models.RawSensorRecord
		collected int
	)

	for i, r := range results {
		if r == nil {
			r = f.downRows(&f.config.Targets[i], ctx.Err())
		} else {
			collected++
		}

		records = append(records, r...)
	}

	if collected == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// targetContext bounds one target by its poll budget and by a share of
// whatever remains of the cycle deadline.
func targetContext(ctx context.Context, target *Target) (context.Context, context.CancelFunc) {
	budget := target.PollBudget()

	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Duration(float64(time.Until(deadline)) * deadlineShare); remaining < budget {
			budget = remaining
		}
	}

	return context.WithTimeout(ctx, budget)
}

func (f *Feed) pollTarget(ctx context.Context, target *Target) []models.RawSensorRecord {
	oids := make([]string, len(target.OIDs))
	for i, o := range target.OIDs {
		oids[i] = strings.TrimPrefix(o.OID, ".")
	}

	tctx, cancel := targetContext(ctx, target)
	defer cancel()

	values, err := f.get(tctx, target, oids)
	if err != nil {
		f.logger.Warn().Err(err).Str("target", target.Name).Msg("SNMP target unreachable")

		return f.downRows(target, err)
	}

	stamp := f.stamp()
	records := make([]models.RawSensorRecord, 0, len(target.OIDs))

	for i := range target.OIDs {
		o := &target.OIDs[i]
		value, ok := values[oids[i]]

		records = append(records, models.RawSensorRecord{
			Device:    target.Name,
			Sensor:    o.SensorName(),
			Status:    statusLabel(evaluate(o, value, ok)),
			LastValue: formatValue(value),
			Timestamp: stamp,
		})
	}

	return records
}

// downRows reports every sensor of target as Down with err as its value.
func (f *Feed) downRows(target *Target, err error) []models.RawSensorRecord {
	stamp := f.stamp()
	records := make([]models.RawSensorRecord, 0, len(target.OIDs))

	for i := range target.OIDs {
		rec := models.RawSensorRecord{
			Device:    target.Name,
			Sensor:    target.OIDs[i].SensorName(),
			Status:    statusLabel(models.StatusDown),
			Timestamp: stamp,
		}

		if err != nil {
			rec.LastValue = err.Error()
		}

		records = append(records, rec)
	}

	return records
}

func (f *Feed) stamp() string {
	return f.now().UTC().Format(time.RFC3339Nano)
}

func (f *Feed) get(ctx context.Context, target *Target, oids []string) (map[string]interface{}, error) {
	client, err := f.factory(ctx, target)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := client.Close(); err != nil {
			f.logger.Debug().Err(err).Str("target", target.Name).Msg("Failed to close SNMP client")
		}
	}()

	values, err := client.Get(oids)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// evaluate applies the thresholds. A missing OID is Unknown; a value that
// is not numeric is Up as long as it was returned.
func evaluate(o *OIDConfig, value interface{}, ok bool) models.Status {
	if !ok || value == nil {
		return models.StatusUnknown
	}

	n, numeric := toFloat(value)
	if !numeric {
		return models.StatusUp
	}

	switch {
	case o.DownAbove != nil && n > *o.DownAbove:
		return models.StatusDown
	case o.WarningAbove != nil && n > *o.WarningAbove:
		return models.StatusWarning
	default:
		return models.StatusUp
	}
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case uint64:
		return float64(v), true
	case time.Duration:
		return v.Seconds(), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)

		return n, err == nil
	default:
		return 0, false
	}
}

func formatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	return fmt.Sprint(value)
}

func statusLabel(s models.Status) json.RawMessage {
	b, _ := json.Marshal(s.String())

	return b
}
