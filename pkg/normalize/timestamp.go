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

package normalize

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// oleEpoch is day zero of OLE automation dates, used by PRTG's raw columns.
var oleEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxOLEDays is 9999-12-31, the last date OLE automation can represent.
const maxOLEDays = 2958465

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"1/2/2006 3:04:05 PM",
	"01/02/2006 15:04:05",
	"2006-01-02",
}

// Timestamp parses an upstream time string. Anything from the first '<'
// on is discarded since the API embeds HTML in some columns. Missing or
// unparseable input yields the zero time, which sorts before every real
// observation.
func Timestamp(value string) time.Time {
	if i := strings.IndexByte(value, '<'); i >= 0 {
		value = value[:i]
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
		return epoch(n)
	}

	return time.Time{}
}

// epoch treats values beyond year 2286 in seconds as milliseconds.
func epoch(n int64) time.Time {
	const maxSeconds = 9_999_999_999

	if n > maxSeconds {
		return time.UnixMilli(n).UTC()
	}

	return time.Unix(n, 0).UTC()
}

func oleTimestamp(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}
	}

	var days float64
	if err := json.Unmarshal(raw, &days); err != nil || days <= 0 || days >= maxOLEDays+1 {
		return time.Time{}
	}

	whole := math.Floor(days)
	frac := time.Duration((days - whole) * float64(24*time.Hour))

	return oleEpoch.AddDate(0, 0, int(whole)).Add(frac).Round(time.Second)
}
