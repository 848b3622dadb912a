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

// Package metrics exposes refresh cycle metrics to Prometheus and keeps a
// short in-memory history of cycle durations per feed.
package metrics

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "socradar"

// Manager implements Recorder.
type Manager struct {
	config   models.MetricsConfig
	feeds    sync.Map // feed name -> CycleStore
	registry *prometheus.Registry

	cycles         *prometheus.CounterVec
	cycleDuration  *prometheus.HistogramVec
	skipped        *prometheus.CounterVec
	discarded      *prometheus.CounterVec
	dropped        *prometheus.CounterVec
	devices        *prometheus.GaugeVec
	sensors        *prometheus.GaugeVec
	alerts         *prometheus.GaugeVec
	lastSuccessful *prometheus.GaugeVec
}

// NewManager creates a Manager with its own registry.
func NewManager(cfg models.MetricsConfig) *Manager {
	m := &Manager{
		config:   cfg,
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_cycles_total",
			Help:      "Refresh cycles run, by feed and result.",
		}, []string{"feed", "result"}),
		cycleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_cycle_duration_seconds",
			Help:      "Time from fetch start to publish.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"feed"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_cycles_skipped_total",
			Help:      "Ticks skipped because too many cycles were in flight.",
		}, []string{"feed"}),
		discarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_cycles_discarded_total",
			Help:      "Cycles that completed after a newer cycle had already been applied.",
		}, []string{"feed"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_dropped_total",
			Help:      "Upstream records dropped during normalization.",
		}, []string{"feed"}),
		devices: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "devices",
			Help:      "Devices in the published view, by status.",
		}, []string{"status"}),
		sensors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sensors",
			Help:      "Sensors in the published view, by status.",
		}, []string{"status"}),
		alerts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alerts",
			Help:      "Active alerts in the published view, by kind.",
		}, []string{"kind"}),
		lastSuccessful: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_successful_cycle_timestamp_seconds",
			Help:      "Unix time of the last successful cycle per feed.",
		}, []string{"feed"}),
	}

	m.registry.MustRegister(
		m.cycles, m.cycleDuration, m.skipped, m.discarded, m.dropped,
		m.devices, m.sensors, m.alerts, m.lastSuccessful,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry gives access to the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Manager) ObserveCycle(feed string, started time.Time, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	} else {
		m.lastSuccessful.WithLabelValues(feed).Set(float64(started.Add(duration).Unix()))
	}

	m.cycles.WithLabelValues(feed, result).Inc()
	m.cycleDuration.WithLabelValues(feed).Observe(duration.Seconds())

	if !m.config.Enabled {
		return
	}

	store, _ := m.feeds.LoadOrStore(feed, NewBuffer(m.config.Retention))
	store.(CycleStore).Add(models.CyclePoint{
		Timestamp: started,
		Duration:  duration,
		Feed:      feed,
		Failed:    err != nil,
	})
}

func (m *Manager) CycleSkipped(feed string) {
	m.skipped.WithLabelValues(feed).Inc()
}

func (m *Manager) CycleDiscarded(feed string) {
	m.discarded.WithLabelValues(feed).Inc()
}

func (m *Manager) RecordsDropped(feed string, n int) {
	if n > 0 {
		m.dropped.WithLabelValues(feed).Add(float64(n))
	}
}

// SetView updates the gauges from a freshly published view.
func (m *Manager) SetView(view *models.AggregateView) {
	setCounts(m.devices, view.CountsByStatus)
	setCounts(m.sensors, view.SensorCounts)

	m.alerts.WithLabelValues("sensor").Set(float64(len(view.SensorAlerts)))
	m.alerts.WithLabelValues("session").Set(float64(len(view.SessionAlerts)))
}

// GetMetrics returns the recent cycle points of feed, or nil when the feed
// has not recorded anything.
func (m *Manager) GetMetrics(feed string) []models.CyclePoint {
	store, ok := m.feeds.Load(feed)
	if !ok {
		return nil
	}

	return store.(CycleStore).GetPoints()
}

// Feeds lists the feeds that have recorded cycle points.
func (m *Manager) Feeds() []string {
	var names []string

	m.feeds.Range(func(key, _ any) bool {
		names = append(names, key.(string))

		return true
	})

	sort.Strings(names)

	return names
}

func setCounts(g *prometheus.GaugeVec, c models.StatusCounts) {
	g.WithLabelValues("up").Set(float64(c.Up))
	g.WithLabelValues("warning").Set(float64(c.Warning))
	g.WithLabelValues("down").Set(float64(c.Down))
	g.WithLabelValues("unknown").Set(float64(c.Unknown))
}
