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
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mfreeman451/socradar/pkg/detect"
	"github.com/mfreeman451/socradar/pkg/logger"
	"github.com/mfreeman451/socradar/pkg/metrics"
	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	t0          = time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	errUpstream = errors.New("connection refused")
)

func raw(device, sensor, status string, ts time.Time) models.RawSensorRecord {
	r := models.RawSensorRecord{
		Device: device,
		Sensor: sensor,
		Status: json.RawMessage(status),
	}

	if !ts.IsZero() {
		r.Timestamp = ts.Format(time.RFC3339)
	}

	return r
}

type sensorFeedFunc func(ctx context.Context) ([]models.RawSensorRecord, error)

func (f sensorFeedFunc) FetchSensorFeed(ctx context.Context) ([]models.RawSensorRecord, error) {
	return f(ctx)
}

func newTestEngine(t *testing.T, sensors SensorFeed, logins LoginFeed, opts ...Option) *Engine {
	t.Helper()

	opts = append([]Option{WithLogger(logger.NewTestLogger()), WithClock(func() time.Time { return t0 })}, opts...)

	e, err := New(Config{}, sensors, logins, opts...)
	require.NoError(t, err)

	return e
}

func TestNewRequiresSensorFeed(t *testing.T) {
	_, err := New(Config{}, nil, nil)
	require.ErrorIs(t, err, ErrNoSensorFeed)
}

func TestInitialViewIsEmptyNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newTestEngine(t, NewMockSensorFeed(ctrl), nil)

	v := e.GetAggregateView()
	require.NotNil(t, v)
	assert.NotNil(t, v.Devices)
	assert.Empty(t, v.Devices)
	assert.Empty(t, e.GetSensorAlerts())
	assert.Empty(t, e.GetSessionAlerts())
}

func TestLatestObservationWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockSensorFeed(ctrl)
	feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
		raw("Router1", "CPU", `"Down"`, t0.Add(time.Minute)),
		raw("Router1", "CPU", `"Up"`, t0),
	}, nil)

	e := newTestEngine(t, feed, nil)
	require.NoError(t, e.RefreshSensors(context.Background()))

	records := e.GetSensorRecords()
	require.Len(t, records, 1)
	assert.Equal(t, "Router1::CPU", records[0].EntityKey)
	assert.Equal(t, models.StatusDown, records[0].Status)

	devices := e.GetDeviceStatuses()
	require.Len(t, devices, 1)
	assert.Equal(t, "Router1", devices[0].Device)
	assert.Equal(t, models.StatusDown, devices[0].Status)

	alerts := e.GetSensorAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "Router1", alerts[0].Device)
	assert.Equal(t, "CPU", alerts[0].Sensor)
}

func TestFetchFailureKeepsPreviousView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockSensorFeed(ctrl)
	gomock.InOrder(
		feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
			raw("Router1", "Ping", `"Up"`, t0),
			raw("Router2", "Ping", `"Warning"`, t0),
			raw("Switch", "Port", `"Down"`, t0),
		}, nil),
		feed.EXPECT().FetchSensorFeed(gomock.Any()).Return(nil, errUpstream),
	)

	e := newTestEngine(t, feed, nil)
	require.NoError(t, e.RefreshSensors(context.Background()))

	before := e.GetAggregateView()
	require.Len(t, before.Devices, 3)

	err := e.RefreshSensors(context.Background())
	require.ErrorIs(t, err, ErrFetch)
	require.ErrorIs(t, err, errUpstream)

	after := e.GetAggregateView()
	assert.Same(t, before, after)
	assert.Len(t, after.Devices, 3)
}

func TestNumericStatusCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockSensorFeed(ctrl)
	feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
		raw("Core", "Ping", `3`, t0),
		raw("Core", "Disk", `0`, t0),
	}, nil)

	e := newTestEngine(t, feed, nil)
	require.NoError(t, e.RefreshSensors(context.Background()))

	detail, ok := e.GetDevice("Core")
	require.True(t, ok)
	assert.Equal(t, models.StatusDown, detail.Status)
	require.Len(t, detail.Sensors, 2)
	assert.Equal(t, models.StatusDown, detail.Sensors[0].Status)
	assert.Equal(t, models.StatusUp, detail.Sensors[1].Status)

	_, ok = e.GetDevice("Edge")
	assert.False(t, ok)
}

func TestEmptyFeedReplacesView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockSensorFeed(ctrl)
	gomock.InOrder(
		feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{raw("A", "B", `"Down"`, t0)}, nil),
		feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{}, nil),
	)

	e := newTestEngine(t, feed, nil)
	require.NoError(t, e.RefreshSensors(context.Background()))
	require.Len(t, e.GetDeviceStatuses(), 1)

	require.NoError(t, e.RefreshSensors(context.Background()))

	v := e.GetAggregateView()
	assert.NotNil(t, v.Devices)
	assert.Empty(t, v.Devices)
	assert.Empty(t, v.SensorAlerts)
	assert.Equal(t, 0, v.TotalSensors)
	assert.Equal(t, uint64(2), v.SensorCycle.Seq)
}

func TestMalformedRecordIsDroppedNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockSensorFeed(ctrl)
	feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
		raw("Router1", "CPU", `{"code":2}`, t0),
		raw("Router1", "Ping", `"Up"`, t0),
		{Status: json.RawMessage(`"Warning"`)},
	}, nil)

	recorder := metrics.NewMockRecorder(ctrl)
	recorder.EXPECT().RecordsDropped(SensorFeedName, 1)
	recorder.EXPECT().SetView(gomock.Any())

	e := newTestEngine(t, feed, nil, WithRecorder(recorder))
	require.NoError(t, e.RefreshSensors(context.Background()))

	records := e.GetSensorRecords()
	require.Len(t, records, 2)
	assert.Equal(t, "Router1::Ping", records[0].EntityKey)
	assert.Equal(t, "unknown::unknown", records[1].EntityKey)
	assert.Equal(t, models.StatusWarning, records[1].Status)
}

func TestAggregateCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockSensorFeed(ctrl)
	feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
		raw("R1", "CPU", `"Up"`, t0),
		raw("R1", "Mem", `"Warning"`, t0),
		raw("R1", "Disk", `"Down (Acknowledged)"`, t0),
		raw("R2", "CPU", `"Up"`, t0),
		raw("R2", "Mem", `"Paused"`, t0),
		raw("R3", "CPU", `"warning"`, t0),
	}, nil)

	e := newTestEngine(t, feed, nil)
	require.NoError(t, e.RefreshSensors(context.Background()))

	v := e.GetAggregateView()
	assert.Equal(t, models.StatusCounts{Up: 1, Warning: 1, Down: 1}, v.CountsByStatus)
	assert.Equal(t, models.StatusCounts{Up: 2, Warning: 2, Down: 1, Unknown: 1}, v.SensorCounts)
	assert.Equal(t, 6, v.TotalSensors)
	assert.Equal(t, 3, v.MaxSensorsByDevice)
	assert.Len(t, v.SensorAlerts, 4)
	assert.Equal(t, t0, v.SensorCycle.CompletedAt)
	assert.NotEmpty(t, v.SensorCycle.CycleID)

	s := e.Summary()
	assert.Equal(t, 3, s.TotalDevices)
	assert.Equal(t, 4, s.SensorAlerts)
}

func TestLateCycleIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entered := make(chan struct{})
	release := make(chan struct{})

	feed := NewMockSensorFeed(ctrl)
	gomock.InOrder(
		feed.EXPECT().FetchSensorFeed(gomock.Any()).DoAndReturn(func(context.Context) ([]models.RawSensorRecord, error) {
			close(entered)
			<-release

			return []models.RawSensorRecord{raw("Router1", "CPU", `"Up"`, t0)}, nil
		}),
		feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
			raw("Router1", "CPU", `"Down"`, t0.Add(time.Minute)),
		}, nil),
	)

	recorder := metrics.NewMockRecorder(ctrl)
	recorder.EXPECT().RecordsDropped(SensorFeedName, 0).Times(2)
	recorder.EXPECT().SetView(gomock.Any()).Times(1)
	recorder.EXPECT().CycleDiscarded(SensorFeedName).Times(1)

	e := newTestEngine(t, feed, nil, WithRecorder(recorder))

	slow := make(chan error, 1)

	go func() { slow <- e.RefreshSensors(context.Background()) }()

	<-entered
	require.NoError(t, e.RefreshSensors(context.Background()))

	close(release)
	require.NoError(t, <-slow)

	v := e.GetAggregateView()
	assert.Equal(t, uint64(2), v.SensorCycle.Seq)
	require.Len(t, v.Devices, 1)
	assert.Equal(t, models.StatusDown, v.Devices[0].Status)
}

func TestReadersNeverSeeMixedCycles(t *testing.T) {
	var cycle atomic.Int64

	feed := sensorFeedFunc(func(context.Context) ([]models.RawSensorRecord, error) {
		n := cycle.Add(1)
		out := make([]models.RawSensorRecord, 0, 10)

		for i := 0; i < 10; i++ {
			r := raw(fmt.Sprintf("dev%02d", i), "ping", `"Up"`, t0)
			r.LastValue = fmt.Sprint(n)
			out = append(out, r)
		}

		return out, nil
	})

	e := newTestEngine(t, feed, nil)

	var wg sync.WaitGroup

	stop := make(chan struct{})

	for r := 0; r < 4; r++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				select {
				case <-stop:
					return
				default:
				}

				v := e.GetAggregateView()
				if len(v.Sensors) == 0 {
					assert.Empty(t, v.Devices)

					continue
				}

				if len(v.Devices) != len(v.Sensors) {
					t.Errorf("devices %d and sensors %d disagree", len(v.Devices), len(v.Sensors))

					return
				}

				tag := v.Sensors[0].LastValue
				for _, s := range v.Sensors {
					if s.LastValue != tag {
						t.Errorf("view mixes cycles %s and %s", tag, s.LastValue)

						return
					}
				}
			}
		}()
	}

	var writers sync.WaitGroup

	for w := 0; w < 3; w++ {
		writers.Add(1)

		go func() {
			defer writers.Done()

			for i := 0; i < 50; i++ {
				_ = e.RefreshSensors(context.Background())
			}
		}()
	}

	writers.Wait()
	close(stop)
	wg.Wait()

	assert.Len(t, e.GetDeviceStatuses(), 10)
}

func TestNotifierSeesTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockSensorFeed(ctrl)
	gomock.InOrder(
		feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
			raw("R1", "CPU", `"Down"`, t0),
			raw("R1", "Ping", `"Up"`, t0),
		}, nil),
		feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
			raw("R1", "CPU", `"Down"`, t0),
			raw("R1", "Ping", `"Up"`, t0),
		}, nil),
		feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
			raw("R1", "CPU", `"Up"`, t0),
			raw("R1", "Ping", `"Up"`, t0),
		}, nil),
	)

	notifier := NewMockNotifier(ctrl)
	gomock.InOrder(
		notifier.EXPECT().SensorAlertsChanged(gomock.Any(), gomock.Any(), gomock.Nil()).
			Do(func(_ context.Context, raised, _ []models.SensorAlert) {
				require.Len(t, raised, 1)
				assert.Equal(t, "R1::CPU", raised[0].EntityKey)
			}),
		notifier.EXPECT().SensorAlertsChanged(gomock.Any(), gomock.Nil(), gomock.Any()).
			Do(func(_ context.Context, _, cleared []models.SensorAlert) {
				require.Len(t, cleared, 1)
				assert.Equal(t, "R1::CPU", cleared[0].EntityKey)
			}),
	)

	e := newTestEngine(t, feed, nil, WithNotifier(notifier))

	for i := 0; i < 3; i++ {
		require.NoError(t, e.RefreshSensors(context.Background()))
	}
}

func TestHistoryRecordedPerCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockSensorFeed(ctrl)
	feed.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{
		raw("R1", "CPU", `"Down"`, t0),
		raw("R2", "CPU", `"Up"`, t0),
	}, nil).Times(2)

	history := NewMockHistoryRecorder(ctrl)
	gomock.InOrder(
		history.EXPECT().RecordCycle(gomock.Any(), &models.HistoryPoint{
			Timestamp:   t0,
			DevicesUp:   1,
			DevicesDown: 1,
			Sensors:     2,
			Alerts:      1,
		}).Return(nil),
		history.EXPECT().RecordCycle(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
	)

	e := newTestEngine(t, feed, nil, WithHistory(history))

	require.NoError(t, e.RefreshSensors(context.Background()))
	require.NoError(t, e.RefreshSensors(context.Background()))
	assert.Len(t, e.GetDeviceStatuses(), 2)
}

func TestRefreshLogins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sensors := NewMockSensorFeed(ctrl)
	sensors.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{raw("R1", "CPU", `"Up"`, t0)}, nil)

	logins := NewMockLoginFeed(ctrl)
	logins.EXPECT().FetchLoginEvents(gomock.Any(), 0).Return([]models.RawLoginEvent{
		{ID: 1, Username: "alice", Action: "Login", UserAgent: "originA", CreatedAt: t0},
		{ID: 2, Username: "alice", Action: "login success", UserAgent: "originB", CreatedAt: t0.Add(time.Minute)},
		{ID: 3, Username: "bob", Action: "login", UserAgent: "originA", CreatedAt: t0},
		{ID: 4, Username: "bob", Action: "logout", UserAgent: "originB", CreatedAt: t0},
		{ID: 5, Username: "", Action: "login", UserAgent: "originC", CreatedAt: t0},
		{ID: 6, Username: "carol", Action: "login", CreatedAt: t0},
		{ID: 7, Username: "carol", Action: "login", UserAgent: "originD", CreatedAt: t0},
	}, nil)

	e := newTestEngine(t, sensors, logins)

	require.NoError(t, e.RefreshSensors(context.Background()))
	sensorView := e.GetAggregateView()

	require.NoError(t, e.RefreshLogins(context.Background()))

	alerts := e.GetSessionAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, models.MultiSessionAlert{
		Principal:       "alice",
		DistinctOrigins: []string{"originA", "originB"},
		LastEventTime:   t0.Add(time.Minute),
	}, alerts[0])

	v := e.GetAggregateView()
	assert.Equal(t, sensorView.Devices, v.Devices)
	assert.Equal(t, sensorView.SensorCycle, v.SensorCycle)
	assert.Equal(t, uint64(1), v.LoginCycle.Seq)
}

func TestRefreshLoginsHonorsWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logins := NewMockLoginFeed(ctrl)
	logins.EXPECT().FetchLoginEvents(gomock.Any(), 50).Return([]models.RawLoginEvent{
		{ID: 1, Username: "alice", Action: "login", UserAgent: "old", CreatedAt: t0.Add(-2 * time.Hour)},
		{ID: 2, Username: "alice", Action: "login", UserAgent: "new", CreatedAt: t0.Add(-time.Minute)},
	}, nil)

	e, err := New(Config{Window: detect.Window{MaxEvents: 50, MaxAge: time.Hour}},
		NewMockSensorFeed(ctrl), logins,
		WithLogger(logger.NewTestLogger()), WithClock(func() time.Time { return t0 }))
	require.NoError(t, err)

	require.NoError(t, e.RefreshLogins(context.Background()))
	assert.Empty(t, e.GetSessionAlerts())
}

func TestRefreshLoginsFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logins := NewMockLoginFeed(ctrl)
	logins.EXPECT().FetchLoginEvents(gomock.Any(), gomock.Any()).Return(nil, errUpstream)

	e := newTestEngine(t, NewMockSensorFeed(ctrl), logins)

	before := e.GetAggregateView()
	require.ErrorIs(t, e.RefreshLogins(context.Background()), ErrFetch)
	assert.Same(t, before, e.GetAggregateView())
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sensors := NewMockSensorFeed(ctrl)
	sensors.EXPECT().FetchSensorFeed(gomock.Any()).Return([]models.RawSensorRecord{raw("R1", "CPU", `"Up"`, t0)}, nil).MinTimes(1)

	logins := NewMockLoginFeed(ctrl)
	logins.EXPECT().FetchLoginEvents(gomock.Any(), gomock.Any()).Return(nil, nil).MinTimes(1)

	e := newTestEngine(t, sensors, logins)
	assert.True(t, e.HasFeed(SensorFeedName))
	assert.True(t, e.HasFeed(LoginFeedName))
	assert.False(t, e.HasFeed("snmp"))

	require.NoError(t, e.Start(context.Background()))
	require.ErrorIs(t, e.Start(context.Background()), errStarted)

	assert.Eventually(t, func() bool {
		v := e.GetAggregateView()

		return v.SensorCycle.Seq >= 1 && v.LoginCycle.Seq >= 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, e.Stop(context.Background()))
	require.ErrorIs(t, e.Stop(context.Background()), ErrNotStarted)

	statuses := e.FeedStatuses()
	require.Len(t, statuses, 2)
	assert.Equal(t, SensorFeedName, statuses[0].Name)
	assert.GreaterOrEqual(t, statuses[0].Cycles, uint64(1))
	assert.Len(t, e.GetDeviceStatuses(), 1)
}
