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

package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(device, sensor string, status models.Status, ts time.Time, value string) models.SensorRecord {
	return models.SensorRecord{
		EntityKey: device + "::" + sensor,
		Device:    device,
		Sensor:    sensor,
		Status:    status,
		LastValue: value,
		Timestamp: ts,
	}
}

func TestReduce(t *testing.T) {
	t0 := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	tests := []struct {
		name  string
		input []models.SensorRecord
		want  []models.SensorRecord
	}{
		{
			name: "latest timestamp wins regardless of order",
			input: []models.SensorRecord{
				rec("Router1", "CPU", models.StatusDown, t1, "99%"),
				rec("Router1", "CPU", models.StatusUp, t0, "10%"),
			},
			want: []models.SensorRecord{rec("Router1", "CPU", models.StatusDown, t1, "99%")},
		},
		{
			name: "tie goes to last seen",
			input: []models.SensorRecord{
				rec("Router1", "CPU", models.StatusUp, t0, "a"),
				rec("Router1", "CPU", models.StatusWarning, t0, "b"),
			},
			want: []models.SensorRecord{rec("Router1", "CPU", models.StatusWarning, t0, "b")},
		},
		{
			name: "good timestamp beats missing one",
			input: []models.SensorRecord{
				rec("Router1", "CPU", models.StatusUp, t0, "good"),
				rec("Router1", "CPU", models.StatusDown, time.Time{}, "bad"),
			},
			want: []models.SensorRecord{rec("Router1", "CPU", models.StatusUp, t0, "good")},
		},
		{
			name:  "missing timestamp kept when alone",
			input: []models.SensorRecord{rec("Router1", "CPU", models.StatusDown, time.Time{}, "only")},
			want:  []models.SensorRecord{rec("Router1", "CPU", models.StatusDown, time.Time{}, "only")},
		},
		{
			name: "ordered by key",
			input: []models.SensorRecord{
				rec("b", "x", models.StatusUp, t0, ""),
				rec("a", "x", models.StatusUp, t0, ""),
			},
			want: []models.SensorRecord{
				rec("a", "x", models.StatusUp, t0, ""),
				rec("b", "x", models.StatusUp, t0, ""),
			},
		},
		{
			name:  "empty",
			input: nil,
			want:  []models.SensorRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.input))
		})
	}
}

func TestIngestKeepsOneRecordPerKey(t *testing.T) {
	s := New()
	base := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)

	var batch []models.SensorRecord
	for i := 0; i < 50; i++ {
		batch = append(batch, rec("Switch", "Port", models.StatusUp, base.Add(time.Duration(i)*time.Second), fmt.Sprint(i)))
	}

	snap := s.Ingest(batch)
	require.Equal(t, 1, snap.Len())

	got, ok := snap.Get("Switch::Port")
	require.True(t, ok)
	assert.Equal(t, "49", got.LastValue)
}

func TestIngestIsIdempotent(t *testing.T) {
	s := New()
	t0 := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	batch := []models.SensorRecord{
		rec("Router1", "CPU", models.StatusDown, t0, "1"),
		rec("Router1", "CPU", models.StatusUp, t0.Add(-time.Hour), "2"),
		rec("Router2", "Ping", models.StatusUp, t0, "3"),
	}

	first := s.Ingest(batch).Records()
	second := s.Ingest(batch).Records()

	assert.Equal(t, first, second)
	assert.Equal(t, uint64(2), s.Snapshot().Generation())
}

func TestIngestReplacesWholesale(t *testing.T) {
	s := New()
	t0 := time.Now()

	s.Ingest([]models.SensorRecord{rec("Old", "CPU", models.StatusUp, t0, "")})
	s.Ingest([]models.SensorRecord{rec("New", "CPU", models.StatusUp, t0, "")})

	_, ok := s.Snapshot().Get("Old::CPU")
	assert.False(t, ok)

	s.Ingest(nil)
	assert.Equal(t, 0, s.Snapshot().Len())
}

func TestSnapshotRecordsIsACopy(t *testing.T) {
	s := New()
	s.Ingest([]models.SensorRecord{rec("A", "B", models.StatusUp, time.Now(), "x")})

	records := s.Snapshot().Records()
	records[0].LastValue = "mutated"

	got, _ := s.Snapshot().Get("A::B")
	assert.Equal(t, "x", got.LastValue)
}

func TestConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	s := New()

	batch := func(tag string) []models.SensorRecord {
		out := make([]models.SensorRecord, 0, 20)
		for i := 0; i < 20; i++ {
			out = append(out, rec(fmt.Sprintf("dev%02d", i), "s", models.StatusUp, time.Now(), tag))
		}

		return out
	}

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

				records := s.Snapshot().Records()
				if len(records) == 0 {
					continue
				}

				tag := records[0].LastValue
				for _, r := range records {
					if r.LastValue != tag {
						t.Errorf("mixed snapshot: %q and %q", tag, r.LastValue)

						return
					}
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		s.Ingest(batch(fmt.Sprint(i)))
	}

	close(stop)
	wg.Wait()
}
