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

// Package store keeps the latest observation per sensor entity.
package store

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
)

// Snapshot is an immutable, internally consistent copy of the store.
type Snapshot struct {
	records    []models.SensorRecord
	index      map[string]int
	generation uint64
	builtAt    time.Time
}

// Records returns a copy of the records ordered by entity key.
func (s *Snapshot) Records() []models.SensorRecord {
	out := make([]models.SensorRecord, len(s.records))
	copy(out, s.records)

	return out
}

// Get returns the record stored for key.
func (s *Snapshot) Get(key string) (models.SensorRecord, bool) {
	i, ok := s.index[key]
	if !ok {
		return models.SensorRecord{}, false
	}

	return s.records[i], true
}

// Len is the number of entities in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Generation counts completed ingests; zero is the initial empty store.
func (s *Snapshot) Generation() uint64 {
	return s.generation
}

// BuiltAt is when the snapshot was swapped in.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// LatestStateStore maps entity keys to their most recent record. Every
// ingest replaces the whole content; readers load the current snapshot
// without locking and never observe a partially built one.
type LatestStateStore struct {
	current atomic.Pointer[Snapshot]
	now     func() time.Time
}

// New creates an empty store.
func New() *LatestStateStore {
	s := &LatestStateStore{now: time.Now}
	s.current.Store(&Snapshot{index: map[string]int{}})

	return s
}

// Ingest reduces records to one per entity key and swaps the result in as
// the new content. Only one goroutine may ingest at a time.
func (s *LatestStateStore) Ingest(records []models.SensorRecord) *Snapshot {
	latest := Reduce(records)

	next := &Snapshot{
		records:    latest,
		index:      make(map[string]int, len(latest)),
		generation: s.current.Load().generation + 1,
		builtAt:    s.now(),
	}

	for i := range latest {
		next.index[latest[i].EntityKey] = i
	}

	s.current.Store(next)

	return next
}

// Snapshot returns the current content.
func (s *LatestStateStore) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reduce keeps, for every entity key, the record with the latest
// timestamp. Equal timestamps go to the record seen last in input order.
// A zero timestamp is older than any real one, so such a record survives
// only when nothing better exists for its key. The result is ordered by
// entity key.
func Reduce(records []models.SensorRecord) []models.SensorRecord {
	byKey := make(map[string]models.SensorRecord, len(records))

	for _, rec := range records {
		existing, ok := byKey[rec.EntityKey]
		if !ok || !rec.Timestamp.Before(existing.Timestamp) {
			byKey[rec.EntityKey] = rec
		}
	}

	out := make([]models.SensorRecord, 0, len(byKey))
	for _, rec := range byKey {
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].EntityKey < out[j].EntityKey
	})

	return out
}
