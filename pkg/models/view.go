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

package models

import "time"

// StatusCounts is a distribution over the four statuses.
type StatusCounts struct {
	Up      int `json:"up"`
	Warning int `json:"warning"`
	Down    int `json:"down"`
	Unknown int `json:"unknown"`
}

// Add counts one more status.
func (c *StatusCounts) Add(s Status) {
	switch s {
	case StatusUp:
		c.Up++
	case StatusWarning:
		c.Warning++
	case StatusDown:
		c.Down++
	case StatusUnknown:
		c.Unknown++
	}
}

// Total is the number of counted items.
func (c StatusCounts) Total() int {
	return c.Up + c.Warning + c.Down + c.Unknown
}

// CycleInfo identifies the refresh cycle a part of the view came from.
type CycleInfo struct {
	Seq         uint64    `json:"seq"`
	CycleID     string    `json:"cycle_id,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// AggregateView is the published snapshot. A view is never mutated after
// it has been published; refreshes build and swap in a new one.
type AggregateView struct {
	Devices            []DeviceStatus      `json:"devices"`
	Sensors            []SensorRecord      `json:"-"`
	SensorAlerts       []SensorAlert       `json:"sensor_alerts"`
	SessionAlerts      []MultiSessionAlert `json:"session_alerts"`
	CountsByStatus     StatusCounts        `json:"counts_by_status"`
	SensorCounts       StatusCounts        `json:"sensor_counts"`
	TotalSensors       int                 `json:"total_sensors"`
	MaxSensorsByDevice int                 `json:"max_sensors_per_device"`
	SensorCycle        CycleInfo           `json:"sensor_cycle"`
	LoginCycle         CycleInfo           `json:"login_cycle"`
}

// EmptyView returns a view with non-nil empty collections.
func EmptyView() *AggregateView {
	return &AggregateView{
		Devices:       []DeviceStatus{},
		Sensors:       []SensorRecord{},
		SensorAlerts:  []SensorAlert{},
		SessionAlerts: []MultiSessionAlert{},
	}
}

// Summary is the compact form used by summary cards.
type Summary struct {
	TotalDevices       int          `json:"total_devices"`
	CountsByStatus     StatusCounts `json:"counts_by_status"`
	SensorCounts       StatusCounts `json:"sensor_counts"`
	TotalSensors       int          `json:"total_sensors"`
	MaxSensorsByDevice int          `json:"max_sensors_per_device"`
	SensorAlerts       int          `json:"sensor_alerts"`
	SessionAlerts      int          `json:"session_alerts"`
	SensorsUpdatedAt   time.Time    `json:"sensors_updated_at"`
	SessionsUpdatedAt  time.Time    `json:"sessions_updated_at"`
}

// Summarize derives the summary of a view.
func (v *AggregateView) Summarize() Summary {
	return Summary{
		TotalDevices:       len(v.Devices),
		CountsByStatus:     v.CountsByStatus,
		SensorCounts:       v.SensorCounts,
		TotalSensors:       v.TotalSensors,
		MaxSensorsByDevice: v.MaxSensorsByDevice,
		SensorAlerts:       len(v.SensorAlerts),
		SessionAlerts:      len(v.SessionAlerts),
		SensorsUpdatedAt:   v.SensorCycle.CompletedAt,
		SessionsUpdatedAt:  v.LoginCycle.CompletedAt,
	}
}

// HistoryPoint is one recorded sensor cycle.
type HistoryPoint struct {
	Timestamp      time.Time `json:"timestamp"`
	DevicesUp      int       `json:"devices_up"`
	DevicesWarning int       `json:"devices_warning"`
	DevicesDown    int       `json:"devices_down"`
	Sensors        int       `json:"sensors"`
	Alerts         int       `json:"alerts"`
}
