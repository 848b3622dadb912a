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

// Package normalize converts heterogeneous upstream rows into the closed
// model types: entity keys, statuses, timestamps and event kinds.
package normalize

import (
	"strings"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
)

const (
	// KeySeparator joins device and sensor names into an entity key.
	KeySeparator = "::"

	// UnknownName replaces a missing device or sensor name.
	UnknownName = "unknown"
)

// EntityKey derives the identity of a sensor from its device and sensor
// names. Upstream numeric ids are not stable across polls, so the name pair
// is the identity; two physical sensors sharing both names collapse into
// one entity.
func EntityKey(device, sensor string) string {
	return nameOrUnknown(device) + KeySeparator + nameOrUnknown(sensor)
}

func nameOrUnknown(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UnknownName
	}

	return name
}

// Sensor normalizes one raw record. The only failure is a status value of
// an unsupported JSON type; a missing status becomes StatusUnknown.
func Sensor(raw *models.RawSensorRecord) (models.SensorRecord, error) {
	status, err := recordStatus(raw)
	if err != nil {
		return models.SensorRecord{}, err
	}

	device := nameOrUnknown(raw.Device)
	sensor := nameOrUnknown(raw.Sensor)

	return models.SensorRecord{
		EntityKey: EntityKey(device, sensor),
		Device:    device,
		Sensor:    sensor,
		Status:    status,
		LastValue: strings.TrimSpace(raw.LastValue),
		Timestamp: recordTimestamp(raw),
	}, nil
}

func recordStatus(raw *models.RawSensorRecord) (models.Status, error) {
	if len(raw.Status) > 0 && string(raw.Status) != "null" {
		return Status(raw.Status)
	}

	if len(raw.StatusRaw) > 0 && string(raw.StatusRaw) != "null" {
		return Status(raw.StatusRaw)
	}

	return models.StatusUnknown, nil
}

func recordTimestamp(raw *models.RawSensorRecord) time.Time {
	if t := Timestamp(raw.Timestamp); !t.IsZero() {
		return t
	}

	if t := Timestamp(raw.LastCheck); !t.IsZero() {
		return t
	}

	return oleTimestamp(raw.LastCheckRaw)
}
