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

import (
	"encoding/json"
	"time"
)

// RawSensorRecord is one row as returned by an upstream sensor feed. Field
// presence and encoding vary between sources; Status may hold a label or a
// numeric code.
type RawSensorRecord struct {
	ObjID        json.RawMessage `json:"objid,omitempty"`
	Device       string          `json:"device,omitempty"`
	Sensor       string          `json:"sensor,omitempty"`
	Status       json.RawMessage `json:"status,omitempty"`
	StatusRaw    json.RawMessage `json:"status_raw,omitempty"`
	LastValue    string          `json:"lastvalue,omitempty"`
	LastValueRaw json.RawMessage `json:"lastvalue_raw,omitempty"`
	LastCheck    string          `json:"lastcheck,omitempty"`
	LastCheckRaw json.RawMessage `json:"lastcheck_raw,omitempty"`
	Timestamp    string          `json:"timestamp,omitempty"`
}

// SensorRecord is one normalized observation of one sensor on one device.
// Records are values; a newer observation replaces an older one in the
// store rather than mutating it.
type SensorRecord struct {
	EntityKey string    `json:"entity_key"`
	Device    string    `json:"device"`
	Sensor    string    `json:"sensor"`
	Status    Status    `json:"status"`
	LastValue string    `json:"last_value"`
	Timestamp time.Time `json:"timestamp"`
}

// HasTimestamp is false when the upstream time was missing or unparseable.
func (r *SensorRecord) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// DeviceStatus is derived from the sensors of one device.
type DeviceStatus struct {
	Device      string   `json:"device"`
	EntityKeys  []string `json:"entity_keys"`
	Status      Status   `json:"status"`
	SensorCount int      `json:"sensor_count"`
}

// DeviceDetail is a device status with its member records.
type DeviceDetail struct {
	DeviceStatus
	Sensors []SensorRecord `json:"sensors"`
}

// SensorAlert is a sensor whose latest observation is not Up.
type SensorAlert struct {
	EntityKey string    `json:"entity_key"`
	Device    string    `json:"device"`
	Sensor    string    `json:"sensor"`
	Status    Status    `json:"status"`
	LastValue string    `json:"last_value"`
	Timestamp time.Time `json:"timestamp"`
}
