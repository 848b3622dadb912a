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

// Package logger provides JSON structured logging on top of zerolog.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu           sync.RWMutex
	globalLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init replaces the process logger according to config.
func Init(config *Config) error {
	return InitWithWriter(config, outputFor(config.Output))
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(config *Config, w io.Writer) error {
	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		parsed, err := zerolog.ParseLevel(config.Level)
		if err != nil {
			return err
		}

		level = parsed
	}

	zerolog.TimeFieldFormat = time.RFC3339
	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()

	mu.Lock()
	globalLogger = l
	log.Logger = l
	mu.Unlock()

	return nil
}

func outputFor(name string) io.Writer {
	if name == "stderr" {
		return os.Stderr
	}

	return os.Stdout
}

// SetDebug toggles between debug and info level.
func SetDebug(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	mu.Lock()
	globalLogger = globalLogger.Level(level)
	log.Logger = globalLogger
	mu.Unlock()
}

func GetLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return globalLogger
}

// WithComponent returns a child logger tagged with the component name.
func WithComponent(component string) zerolog.Logger {
	return GetLogger().With().Str("component", component).Logger()
}

func Debug() *zerolog.Event {
	l := GetLogger()

	return l.Debug()
}

func Info() *zerolog.Event {
	l := GetLogger()

	return l.Info()
}

func Warn() *zerolog.Event {
	l := GetLogger()

	return l.Warn()
}

func Error() *zerolog.Event {
	l := GetLogger()

	return l.Error()
}

func Fatal() *zerolog.Event {
	l := GetLogger()

	return l.Fatal()
}

// NewTestLogger returns a logger that discards everything.
func NewTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}
