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

import "errors"

var (
	// ErrFetch marks a cycle aborted because a feed could not be read.
	// The previously published view stays in place.
	ErrFetch        = errors.New("fetch failed")
	ErrNoSensorFeed = errors.New("sensor feed is required")
	ErrNotStarted   = errors.New("engine not started")
	errStarted      = errors.New("engine already started")
)
