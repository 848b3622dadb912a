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

package snmp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mfreeman451/socradar/pkg/config"
	"github.com/mfreeman451/socradar/pkg/logger"
	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/mfreeman451/socradar/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(f float64) *float64 { return &f }

func testConfig() Config {
	return Config{Targets: []Target{
		{
			Name: "core-router",
			Host: "10.0.0.1",
			OIDs: []OIDConfig{
				{OID: ".1.3.6.1.2.1.1.3.0", Name: "Uptime"},
				{OID: "1.3.6.1.4.1.9.2.1.58.0", Name: "CPU", WarningAbove: ptr(70), DownAbove: ptr(90)},
				{OID: "1.3.6.1.4.1.9.9.48.1.1.1.5.1", Name: "Mem", WarningAbove: ptr(80)},
				{OID: "1.3.6.1.2.1.1.5.0"},
			},
		},
		{
			Name: "edge",
			Host: "10.0.0.2",
			OIDs: []OIDConfig{{OID: "1.3.6.1.2.1.1.3.0", Name: "Uptime"}},
		},
	}}
}

func TestFetchSensorFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core := NewMockSNMPClient(ctrl)
	core.EXPECT().Get([]string{
		"1.3.6.1.2.1.1.3.0",
		"1.3.6.1.4.1.9.2.1.58.0",
		"1.3.6.1.4.1.9.9.48.1.1.1.5.1",
		"1.3.6.1.2.1.1.5.0",
	}).Return(map[string]interface{}{
		"1.3.6.1.2.1.1.3.0":            42 * time.Hour,
		"1.3.6.1.4.1.9.2.1.58.0":       75,
		"1.3.6.1.4.1.9.9.48.1.1.1.5.1": uint64(12),
	}, nil)
	core.EXPECT().Close().Return(nil)

	factory := func(_ context.Context, target *Target) (SNMPClient, error) {
		if target.Name == "edge" {
			return nil, &SNMPError{Op: "connect", Target: target.Host, Wrapped: errors.New("timeout")}
		}

		return core, nil
	}

	feed, err := NewFeed(testConfig(), factory, logger.NewTestLogger())
	require.NoError(t, err)

	fixed := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	feed.now = func() time.Time { return fixed }

	raw, err := feed.FetchSensorFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 5)

	got := map[string]models.SensorRecord{}

	for i := range raw {
		rec, err := normalize.Sensor(&raw[i])
		require.NoError(t, err)

		got[rec.EntityKey] = rec
	}

	assert.Equal(t, models.StatusUp, got["core-router::Uptime"].Status)
	assert.Equal(t, "42h0m0s", got["core-router::Uptime"].LastValue)
	assert.Equal(t, models.StatusWarning, got["core-router::CPU"].Status)
	assert.Equal(t, models.StatusUp, got["core-router::Mem"].Status)
	assert.Equal(t, models.StatusUnknown, got["core-router::1.3.6.1.2.1.1.5.0"].Status)
	assert.Equal(t, models.StatusDown, got["edge::Uptime"].Status)
	assert.Contains(t, got["edge::Uptime"].LastValue, "timeout")
	assert.Equal(t, fixed, got["edge::Uptime"].Timestamp)
}

func TestFetchSensorFeedGetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockSNMPClient(ctrl)
	client.EXPECT().Get(gomock.Any()).Return(nil, errors.New("request timeout"))
	client.EXPECT().Close().Return(nil)

	cfg := Config{Targets: []Target{{Name: "sw", Host: "10.0.0.3", OIDs: []OIDConfig{{OID: "1.3.6.1.2.1.1.3.0"}}}}}

	feed, err := NewFeed(cfg, func(context.Context, *Target) (SNMPClient, error) { return client, nil }, logger.NewTestLogger())
	require.NoError(t, err)

	raw, err := feed.FetchSensorFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, json.RawMessage(`"Down"`), raw[0].Status)
}

type stubClient struct {
	get func(oids []string) (map[string]interface{}, error)
}

func (s stubClient) Get(oids []string) (map[string]interface{}, error) { return s.get(oids) }

func (stubClient) Close() error { return nil }

func liveClient() stubClient {
	return stubClient{get: func([]string) (map[string]interface{}, error) {
		return map[string]interface{}{"1.3.6.1.2.1.1.3.0": 5 * time.Minute}, nil
	}}
}

func twoTargets(deadTimeout time.Duration) Config {
	return Config{Targets: []Target{
		{Name: "alive", Host: "10.0.0.1", OIDs: []OIDConfig{{OID: "1.3.6.1.2.1.1.3.0", Name: "Uptime"}}},
		{Name: "dead", Host: "10.0.0.2", Timeout: config.Duration(deadTimeout), OIDs: []OIDConfig{
			{OID: "1.3.6.1.2.1.1.3.0", Name: "Uptime"},
			{OID: "1.3.6.1.2.1.1.5.0", Name: "Name"},
		}},
	}}
}

func byKey(t *testing.T, raw []models.RawSensorRecord) map[string]models.SensorRecord {
	t.Helper()

	got := make(map[string]models.SensorRecord, len(raw))

	for i := range raw {
		rec, err := normalize.Sensor(&raw[i])
		require.NoError(t, err)

		got[rec.EntityKey] = rec
	}

	return got
}

func TestFetchSensorFeedDeadTargetKeepsOthers(t *testing.T) {
	tests := []struct {
		name        string
		deadTimeout time.Duration
		cycle       time.Duration
	}{
		{name: "target budget", deadTimeout: 50 * time.Millisecond, cycle: 5 * time.Second},
		{name: "cycle deadline", deadTimeout: time.Minute, cycle: 300 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := func(ctx context.Context, target *Target) (SNMPClient, error) {
				if target.Name == "alive" {
					return liveClient(), nil
				}

				return stubClient{get: func([]string) (map[string]interface{}, error) {
					<-ctx.Done()

					return nil, ctx.Err()
				}}, nil
			}

			feed, err := NewFeed(twoTargets(tt.deadTimeout), factory, logger.NewTestLogger())
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), tt.cycle)
			defer cancel()

			start := time.Now()
			raw, err := feed.FetchSensorFeed(ctx)
			require.NoError(t, err)
			assert.Less(t, time.Since(start), tt.cycle)
			require.Len(t, raw, 3)

			got := byKey(t, raw)
			assert.Equal(t, models.StatusUp, got["alive::Uptime"].Status)
			assert.Equal(t, "5m0s", got["alive::Uptime"].LastValue)
			assert.Equal(t, models.StatusDown, got["dead::Uptime"].Status)
			assert.Equal(t, models.StatusDown, got["dead::Name"].Status)
			assert.Contains(t, got["dead::Uptime"].LastValue, "deadline exceeded")
		})
	}
}

func TestFetchSensorFeedHungTarget(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	hung := stubClient{get: func([]string) (map[string]interface{}, error) {
		<-release

		return nil, errors.New("released")
	}}

	t.Run("others still report", func(t *testing.T) {
		factory := func(_ context.Context, target *Target) (SNMPClient, error) {
			if target.Name == "alive" {
				return liveClient(), nil
			}

			return hung, nil
		}

		feed, err := NewFeed(twoTargets(time.Minute), factory, logger.NewTestLogger())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		raw, err := feed.FetchSensorFeed(ctx)
		require.NoError(t, err)

		got := byKey(t, raw)
		assert.Equal(t, models.StatusUp, got["alive::Uptime"].Status)
		assert.Equal(t, models.StatusDown, got["dead::Uptime"].Status)
	})

	t.Run("nothing collected", func(t *testing.T) {
		factory := func(context.Context, *Target) (SNMPClient, error) { return hung, nil }

		feed, err := NewFeed(twoTargets(time.Minute), factory, logger.NewTestLogger())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err = feed.FetchSensorFeed(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestPollBudget(t *testing.T) {
	target := Target{Host: "h", OIDs: []OIDConfig{{OID: "1"}}}
	require.NoError(t, target.validate())
	assert.Equal(t, defaultTimeout*time.Duration(defaultRetries+1), target.PollBudget())

	target.Timeout = config.Duration(time.Second)
	target.Retries = 3
	assert.Equal(t, 4*time.Second, target.PollBudget())
}

func TestEvaluate(t *testing.T) {
	cpu := &OIDConfig{OID: "x", WarningAbove: ptr(70), DownAbove: ptr(90)}

	tests := []struct {
		name  string
		value interface{}
		ok    bool
		want  models.Status
	}{
		{"missing", nil, false, models.StatusUnknown},
		{"below", 10, true, models.StatusUp},
		{"equal to warning is up", 70, true, models.StatusUp},
		{"warning", uint64(71), true, models.StatusWarning},
		{"down", "95.5", true, models.StatusDown},
		{"text", "Cisco IOS", true, models.StatusUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(cpu, tt.value, tt.ok))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, cfg.Validate())

	target := cfg.Targets[0]
	assert.Equal(t, uint16(161), target.Port)
	assert.Equal(t, Version2c, target.Version)
	assert.Equal(t, "public", target.Community)
	assert.Equal(t, defaultRetries, target.Retries)

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"no targets", Config{}, errInvalidConfig},
		{"no host", Config{Targets: []Target{{Name: "a", OIDs: []OIDConfig{{OID: "1"}}}}}, errInvalidConfig},
		{"no oids", Config{Targets: []Target{{Host: "h"}}}, errInvalidConfig},
		{"v3", Config{Targets: []Target{{Host: "h", Version: "v3", OIDs: []OIDConfig{{OID: "1"}}}}}, errUnsupportedVersion},
		{"duplicate", Config{Targets: []Target{
			{Host: "h", OIDs: []OIDConfig{{OID: "1"}}},
			{Host: "h", OIDs: []OIDConfig{{OID: "2"}}},
		}}, errInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.cfg.Validate(), tt.want)
		})
	}
}
