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

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    zerolog.Level
		wantErr bool
	}{
		{"default info", Config{}, zerolog.InfoLevel, false},
		{"explicit level", Config{Level: "warn"}, zerolog.WarnLevel, false},
		{"debug overrides level", Config{Level: "error", Debug: true}, zerolog.DebugLevel, false},
		{"bad level", Config{Level: "loud"}, zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitWithWriter(&tt.config, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, GetLogger().GetLevel())
		})
	}
}

func TestWithComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, InitWithWriter(&Config{Level: "info"}, &buf))

	l := WithComponent("engine")
	l.Info().Str("feed", "sensors").Msg("cycle applied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, "sensors", entry["feed"])
	assert.Equal(t, "cycle applied", entry["message"])
}

func TestSetDebug(t *testing.T) {
	require.NoError(t, InitWithWriter(&Config{}, &bytes.Buffer{}))

	SetDebug(true)
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())

	SetDebug(false)
	assert.Equal(t, zerolog.InfoLevel, GetLogger().GetLevel())
}

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEBUG", "yes")
	t.Setenv("LOG_OUTPUT", "stderr")

	cfg := DefaultConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "stderr", cfg.Output)

	partial := Config{Level: "warn"}
	partial.MergeDefaults()
	assert.Equal(t, "warn", partial.Level)
	assert.Equal(t, "stderr", partial.Output)
}

func TestNewTestLoggerIsSilent(t *testing.T) {
	l := NewTestLogger()
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
