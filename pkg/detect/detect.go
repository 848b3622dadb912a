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

// Package detect holds the stateless anomaly detectors that run over the
// latest snapshot after every refresh cycle.
package detect

import (
	"sort"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/mfreeman451/socradar/pkg/store"
)

// SensorHealth reports every sensor whose status is not Up. Records are
// reduced to the latest observation per entity key first, so feeding it
// unreduced history still yields one alert per sensor. Alerts are ordered
// by entity key.
func SensorHealth(records []models.SensorRecord) []models.SensorAlert {
	latest := store.Reduce(records)

	alerts := make([]models.SensorAlert, 0)

	for i := range latest {
		r := &latest[i]
		if r.Status == models.StatusUp {
			continue
		}

		alerts = append(alerts, models.SensorAlert{
			EntityKey: r.EntityKey,
			Device:    r.Device,
			Sensor:    r.Sensor,
			Status:    r.Status,
			LastValue: r.LastValue,
			Timestamp: r.Timestamp,
		})
	}

	return alerts
}

// Window bounds the login events the multi-session detector looks at.
// Zero values mean unbounded.
type Window struct {
	// MaxEvents keeps only the newest N events.
	MaxEvents int
	// MaxAge keeps only events newer than now minus MaxAge. Events without
	// a timestamp fall outside any age bound.
	MaxAge time.Duration
}

// Apply returns the events inside the window, preserving input order.
func (w Window) Apply(events []models.LoginEvent, now time.Time) []models.LoginEvent {
	kept := events

	if w.MaxAge > 0 {
		cutoff := now.Add(-w.MaxAge)
		kept = make([]models.LoginEvent, 0, len(events))

		for i := range events {
			if events[i].Timestamp.After(cutoff) {
				kept = append(kept, events[i])
			}
		}
	}

	if w.MaxEvents > 0 && len(kept) > w.MaxEvents {
		kept = newest(kept, w.MaxEvents)
	}

	return kept
}

// newest keeps the n latest events. Among equal timestamps the later input
// position is considered newer.
func newest(events []models.LoginEvent, n int) []models.LoginEvent {
	idx := make([]int, len(events))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := events[idx[a]].Timestamp, events[idx[b]].Timestamp
		if ta.Equal(tb) {
			return idx[a] > idx[b]
		}

		return ta.After(tb)
	})

	idx = idx[:n]
	sort.Ints(idx)

	out := make([]models.LoginEvent, 0, n)
	for _, i := range idx {
		out = append(out, events[i])
	}

	return out
}

// MultiSession flags every principal that logged in from more than one
// distinct origin inside the window. Only login events count; events with
// an empty principal or origin are ignored. Origins are sorted and alerts
// are ordered by principal.
func MultiSession(events []models.LoginEvent, w Window, now time.Time) []models.MultiSessionAlert {
	type group struct {
		origins map[string]struct{}
		last    time.Time
	}

	groups := make(map[string]*group)

	for _, ev := range w.Apply(events, now) {
		if ev.Kind != models.EventLogin || ev.Principal == "" || ev.Origin == "" {
			continue
		}

		g, ok := groups[ev.Principal]
		if !ok {
			g = &group{origins: make(map[string]struct{})}
			groups[ev.Principal] = g
		}

		g.origins[ev.Origin] = struct{}{}

		if ev.Timestamp.After(g.last) {
			g.last = ev.Timestamp
		}
	}

	alerts := make([]models.MultiSessionAlert, 0)

	for principal, g := range groups {
		if len(g.origins) < 2 {
			continue
		}

		origins := make([]string, 0, len(g.origins))
		for o := range g.origins {
			origins = append(origins, o)
		}

		sort.Strings(origins)

		alerts = append(alerts, models.MultiSessionAlert{
			Principal:       principal,
			DistinctOrigins: origins,
			LastEventTime:   g.last,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Principal < alerts[j].Principal
	})

	return alerts
}
