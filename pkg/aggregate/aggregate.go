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

// Package aggregate folds sensor records into per-device statuses.
package aggregate

import (
	"sort"

	"github.com/mfreeman451/socradar/pkg/models"
)

// Fold reduces the statuses of one device's sensors: any Down makes the
// device Down, else any Warning makes it Warning, else it is Up. Unknown
// never raises a device above Up.
func Fold(statuses ...models.Status) models.Status {
	folded := models.StatusUp

	for _, s := range statuses {
		switch s {
		case models.StatusDown:
			return models.StatusDown
		case models.StatusWarning:
			folded = models.StatusWarning
		case models.StatusUp, models.StatusUnknown:
		}
	}

	return folded
}

// Devices groups records by device and folds each group. Devices without
// sensors do not appear. The result is ordered by device name and each
// device's entity keys are sorted.
func Devices(records []models.SensorRecord) []models.DeviceStatus {
	groups := groupByDevice(records)

	out := make([]models.DeviceStatus, 0, len(groups))

	for device, members := range groups {
		out = append(out, fold(device, members))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Device < out[j].Device
	})

	return out
}

// Detail returns the status of one device along with its sensor records.
func Detail(records []models.SensorRecord, device string) (models.DeviceDetail, bool) {
	var members []models.SensorRecord

	for i := range records {
		if records[i].Device == device {
			members = append(members, records[i])
		}
	}

	if len(members) == 0 {
		return models.DeviceDetail{}, false
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].EntityKey < members[j].EntityKey
	})

	return models.DeviceDetail{
		DeviceStatus: fold(device, members),
		Sensors:      members,
	}, true
}

// Counts is the number of devices in each status.
func Counts(devices []models.DeviceStatus) models.StatusCounts {
	var c models.StatusCounts

	for i := range devices {
		c.Add(devices[i].Status)
	}

	return c
}

// SensorCounts is the number of sensors in each status.
func SensorCounts(records []models.SensorRecord) models.StatusCounts {
	var c models.StatusCounts

	for i := range records {
		c.Add(records[i].Status)
	}

	return c
}

// MaxSensors is the largest sensor count of any single device.
func MaxSensors(devices []models.DeviceStatus) int {
	maxCount := 0

	for i := range devices {
		if devices[i].SensorCount > maxCount {
			maxCount = devices[i].SensorCount
		}
	}

	return maxCount
}

func groupByDevice(records []models.SensorRecord) map[string][]models.SensorRecord {
	groups := make(map[string][]models.SensorRecord)

	for i := range records {
		groups[records[i].Device] = append(groups[records[i].Device], records[i])
	}

	return groups
}

func fold(device string, members []models.SensorRecord) models.DeviceStatus {
	keys := make([]string, 0, len(members))
	statuses := make([]models.Status, 0, len(members))

	for i := range members {
		keys = append(keys, members[i].EntityKey)
		statuses = append(statuses, members[i].Status)
	}

	sort.Strings(keys)

	return models.DeviceStatus{
		Device:      device,
		EntityKeys:  keys,
		Status:      Fold(statuses...),
		SensorCount: len(members),
	}
}
