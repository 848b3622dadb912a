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

package metrics

import (
	"sync"

	"github.com/mfreeman451/socradar/pkg/models"
)

// RingBuffer is a fixed size CycleStore that overwrites its oldest point.
type RingBuffer struct {
	mu     sync.RWMutex
	points []models.CyclePoint
	pos    int
	filled bool
}

// NewBuffer creates a RingBuffer holding up to size points.
func NewBuffer(size int) CycleStore {
	if size <= 0 {
		size = 1
	}

	return &RingBuffer{
		points: make([]models.CyclePoint, size),
	}
}

// Add stores a point, evicting the oldest one when full.
func (b *RingBuffer) Add(point models.CyclePoint) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.points[b.pos] = point
	b.pos = (b.pos + 1) % len(b.points)

	if b.pos == 0 {
		b.filled = true
	}
}

// GetPoints returns the stored points, oldest first.
func (b *RingBuffer) GetPoints() []models.CyclePoint {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.filled {
		out := make([]models.CyclePoint, b.pos)
		copy(out, b.points[:b.pos])

		return out
	}

	out := make([]models.CyclePoint, 0, len(b.points))
	out = append(out, b.points[b.pos:]...)
	out = append(out, b.points[:b.pos]...)

	return out
}

// GetLastPoint returns the newest point or nil when empty.
func (b *RingBuffer) GetLastPoint() *models.CyclePoint {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.filled && b.pos == 0 {
		return nil
	}

	idx := (b.pos - 1 + len(b.points)) % len(b.points)
	p := b.points[idx]

	return &p
}
