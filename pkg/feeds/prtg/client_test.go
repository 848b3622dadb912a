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

package prtg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mfreeman451/socradar/pkg/logger"
	"github.com/mfreeman451/socradar/pkg/normalize"
	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// status_raw uses the 3 Up, 2 Warning, 1/0 Down codes; the label wins
// when both are present.
const sensorTable = `{
  "prtg-version": "24.1.92.1554",
  "treesize": 3,
  "sensors": [
    {"objid": 2001, "device": "Router1", "sensor": "CPU Load", "status": "Down", "status_raw": 0,
     "lastvalue": "99 %", "lastcheck": "3/4/2025 10:30:00 AM <span class=\"percent\">[8 s ago]</span>",
     "lastcheck_raw": 45720.4375},
    {"objid": 2002, "device": "Router1", "sensor": "Ping", "status": "Up", "status_raw": 3,
     "lastvalue": "2 msec", "lastcheck_raw": 45720.4375},
    {"objid": 2003, "device": "Switch", "sensor": "Port 1", "status_raw": 2, "lastvalue": ""}
  ]
}`

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()

	c, err := NewClient(Config{
		BaseURL:   url,
		Username:  "prtgadmin",
		Passhash:  "123456",
		RateLimit: 1000,
	}, logger.NewTestLogger())
	require.NoError(t, err)

	return c
}

func TestFetchSensorFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, tablePath, r.URL.Path)
		assert.Equal(t, "sensors", r.URL.Query().Get("content"))
		assert.Equal(t, "prtgadmin", r.URL.Query().Get("username"))
		assert.Equal(t, "123456", r.URL.Query().Get("passhash"))
		assert.Equal(t, "2500", r.URL.Query().Get("count"))
		assert.Contains(t, r.URL.Query().Get("columns"), "lastcheck")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sensorTable))
	}))
	defer srv.Close()

	records, err := newTestClient(t, srv.URL+"/").FetchSensorFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Router1", records[0].Device)
	assert.Equal(t, "CPU Load", records[0].Sensor)

	first, err := normalize.Sensor(&records[0])
	require.NoError(t, err)
	assert.Equal(t, "Router1::CPU Load", first.EntityKey)
	assert.Equal(t, models.StatusDown, first.Status)
	assert.Equal(t, time.Date(2025, time.March, 4, 10, 30, 0, 0, time.UTC), first.Timestamp)

	second, err := normalize.Sensor(&records[1])
	require.NoError(t, err)
	assert.Equal(t, models.StatusUp, second.Status)
	assert.Equal(t, first.Timestamp, second.Timestamp)

	third, err := normalize.Sensor(&records[2])
	require.NoError(t, err)
	assert.Equal(t, models.StatusWarning, third.Status)
}

func TestFetchSensorFeedSkipsMalformedRows(t *testing.T) {
	const body = `{"sensors": [
	  {"device": "R1", "sensor": "CPU", "status": "Up", "lastvalue": "5 %"},
	  {"device": "R2", "sensor": "Ping", "status": "Down", "lastvalue": 12},
	  {"device": {"name": "R3"}, "sensor": "Fan", "status": "Up"},
	  {"device": "R4", "sensor": "Disk", "status": 2, "lastvalue": "81 %"}
	]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	records, err := newTestClient(t, srv.URL).FetchSensorFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "R1", records[0].Device)
	assert.Equal(t, "5 %", records[0].LastValue)
	assert.Equal(t, "R4", records[1].Device)

	rec, err := normalize.Sensor(&records[1])
	require.NoError(t, err)
	assert.Equal(t, models.StatusWarning, rec.Status)
}

func TestFetchSensorFeedErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, "<error>bad passhash</error>", errStatus},
		{"missing table", http.StatusOK, `{"devices": []}`, errMissingTable},
		{"malformed", http.StatusOK, `{"sensors": {`, nil},
		{"rows not a list", http.StatusOK, `{"sensors": {"device": "R1"}}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).FetchSensorFeed(context.Background())
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFetchSensorFeedHonorsContext(t *testing.T) {
	block := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(t, srv.URL).FetchSensorFeed(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{BaseURL: "https://prtg.example.com", Username: "u", Passhash: "p"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultContent, cfg.Content)
	assert.Equal(t, defaultCount, cfg.Count)
	assert.InDelta(t, defaultRateLimit, cfg.RateLimit, 0)
	assert.Equal(t, defaultTimeout, cfg.Timeout.Std())

	bad := Config{BaseURL: "prtg", Username: "u", Passhash: "p"}
	require.ErrorIs(t, bad.Validate(), errInvalidConfig)

	noCreds := Config{BaseURL: "https://prtg.example.com"}
	require.ErrorIs(t, noCreds.Validate(), errInvalidConfig)
}
