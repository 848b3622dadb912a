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


// Package db pkg/db/db.go provides the SQLite store behind the login feed,
// the table-backed sensor feed and the cycle history.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog"
)

const (
	// Maximum number of history points returned when no limit is given.
	maxHistoryPoints = 1000

	createTablesSQL = `
	-- Audit rows written by the authentication flow
	CREATE TABLE IF NOT EXISTS user_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT,
		username TEXT,
		action TEXT NOT NULL,
		ip TEXT,
		user_agent TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Sensor rows maintained by an external collector
	CREATE TABLE IF NOT EXISTS sensors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		objid TEXT,
		device TEXT,
		sensor TEXT,
		status TEXT,
		lastvalue TEXT,
		lastcheck TEXT,
		timestamp TEXT
	);

	-- One row per published sensor cycle
	CREATE TABLE IF NOT EXISTS status_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TIMESTAMP NOT NULL,
		devices_up INTEGER NOT NULL DEFAULT 0,
		devices_warning INTEGER NOT NULL DEFAULT 0,
		devices_down INTEGER NOT NULL DEFAULT 0,
		sensors INTEGER NOT NULL DEFAULT 0,
		alerts INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_user_logs_created
		ON user_logs(created_at);
	CREATE INDEX IF NOT EXISTS idx_status_history_time
		ON status_history(timestamp);
	`
)

// DB represents the database connection and operations.
type DB struct {
	db     *sql.DB
	logger zerolog.Logger
	now    func() time.Time
}

// New opens the SQLite file at path and initializes the schema.
func New(path string, logger zerolog.Logger) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = sqlDB.Close()

		return nil, fmt.Errorf("%w: %w", ErrFailedToEnableWAL, err)
	}

	d := NewWithDB(sqlDB, logger)
	if err := d.initSchema(); err != nil {
		_ = sqlDB.Close()

		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return d, nil
}

// NewWithDB wraps an already opened connection. The schema is assumed to exist.
func NewWithDB(sqlDB *sql.DB, logger zerolog.Logger) *DB {
	return &DB{
		db:     sqlDB,
		logger: logger.With().Str("component", "db").Logger(),
		now:    time.Now,
	}
}

func (d *DB) initSchema() error {
	_, err := d.db.Exec(createTablesSQL)

	return err
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		d.logger.Warn().Err(err).Msg("failed to close rows")
	}
}
