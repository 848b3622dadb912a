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

package detect

import (
	"testing"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)

func login(principal, origin string, at time.Time) models.LoginEvent {
	return models.LoginEvent{Principal: principal, Origin: origin, Timestamp: at, Kind: models.EventLogin}
}

func TestSensorHealth(t *testing.T) {
	records := []models.SensorRecord{
		{EntityKey: "Router1::CPU", Device: "Router1", Sensor: "CPU", Status: models.StatusDown, LastValue: "99 %", Timestamp: t0.Add(time.Minute)},
		{EntityKey: "Router1::CPU", Device: "Router1", Sensor: "CPU", Status: models.StatusUp, Timestamp: t0},
		{EntityKey: "Router1::Ping", Device: "Router1", Sensor: "Ping", Status: models.StatusUp, Timestamp: t0},
		{EntityKey: "AP::Radio", Device: "AP", Sensor: "Radio", Status: models.StatusUnknown, Timestamp: t0},
		{EntityKey: "AP::Mem", Device: "AP", Sensor: "Mem", Status: models.StatusWarning, Timestamp: t0},
	}

	alerts := SensorHealth(records)
	require.Len(t, alerts, 3)

	assert.Equal(t, "AP::Mem", alerts[0].EntityKey)
	assert.Equal(t, models.StatusWarning, alerts[0].Status)
	assert.Equal(t, "AP::Radio", alerts[1].EntityKey)
	assert.Equal(t, models.SensorAlert{
		EntityKey: "Router1::CPU",
		Device:    "Router1",
		Sensor:    "CPU",
		Status:    models.StatusDown,
		LastValue: "99 %",
		Timestamp: t0.Add(time.Minute),
	}, alerts[2])
}

func TestSensorHealthRecoveredSensorDropsOut(t *testing.T) {
	records := []models.SensorRecord{
		{EntityKey: "R::CPU", Status: models.StatusDown, Timestamp: t0},
		{EntityKey: "R::CPU", Status: models.StatusUp, Timestamp: t0.Add(time.Second)},
	}

	alerts := SensorHealth(records)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestMultiSession(t *testing.T) {
	events := []models.LoginEvent{
		login("alice", "originA", t0),
		login("alice", "originB", t0.Add(time.Minute)),
		login("bob", "originA", t0),
	}

	alerts := MultiSession(events, Window{}, t0)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.MultiSessionAlert{
		Principal:       "alice",
		DistinctOrigins: []string{"originA", "originB"},
		LastEventTime:   t0.Add(time.Minute),
	}, alerts[0])
}

func TestMultiSessionFilters(t *testing.T) {
	logout := login("carol", "originB", t0)
	logout.Kind = models.EventLogout

	other := login("carol", "originC", t0)
	other.Kind = models.EventOther

	events := []models.LoginEvent{
		login("carol", "originA", t0),
		logout,
		other,
		login("dave", "originA", t0),
		login("dave", "originA", t0.Add(time.Second)),
		login("", "originX", t0),
		login("", "originY", t0),
		login("erin", "", t0),
		login("erin", "originA", t0),
	}

	assert.Empty(t, MultiSession(events, Window{}, t0))
}

func TestMultiSessionSortedByPrincipal(t *testing.T) {
	events := []models.LoginEvent{
		login("zed", "b", t0),
		login("zed", "a", t0),
		login("amy", "y", t0),
		login("amy", "x", t0),
	}

	alerts := MultiSession(events, Window{}, t0)
	require.Len(t, alerts, 2)
	assert.Equal(t, "amy", alerts[0].Principal)
	assert.Equal(t, []string{"x", "y"}, alerts[0].DistinctOrigins)
	assert.Equal(t, "zed", alerts[1].Principal)
	assert.Equal(t, []string{"a", "b"}, alerts[1].DistinctOrigins)
}

func TestWindowApply(t *testing.T) {
	now := t0.Add(time.Hour)
	events := []models.LoginEvent{
		login("a", "1", t0),
		login("a", "2", now.Add(-10*time.Minute)),
		login("a", "3", now.Add(-5*time.Minute)),
		login("a", "4", time.Time{}),
	}

	tests := []struct {
		name   string
		window Window
		want   []string
	}{
		{"unbounded", Window{}, []string{"1", "2", "3", "4"}},
		{"max age", Window{MaxAge: 30 * time.Minute}, []string{"2", "3"}},
		{"max events", Window{MaxEvents: 2}, []string{"2", "3"}},
		{"both", Window{MaxEvents: 1, MaxAge: 30 * time.Minute}, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.window.Apply(events, now)

			origins := make([]string, 0, len(got))
			for _, ev := range got {
				origins = append(origins, ev.Origin)
			}

			assert.Equal(t, tt.want, origins)
		})
	}
}

func TestMultiSessionWindowExcludesOldOrigin(t *testing.T) {
	now := t0.Add(time.Hour)
	events := []models.LoginEvent{
		login("alice", "old", t0),
		login("alice", "new", now.Add(-time.Minute)),
	}

	assert.Len(t, MultiSession(events, Window{}, now), 1)
	assert.Empty(t, MultiSession(events, Window{MaxAge: 10 * time.Minute}, now))
}
