package database

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Open opens the SQLite database file and verifies the connection.
func Open(file string) (*sql.DB, error) {
	// busy_timeout makes concurrent writers wait instead of failing fast
	dsn := "file:" + file + "?_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one pooled connection also keeps
	// :memory: databases stable across queries.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Init drops and recreates all tables so the process always starts with a
// fresh store. Foreign keys are plain integer columns on purpose: deleting
// a parent leaves children pointing at the old id.
func Init(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`DROP TABLE IF EXISTS events`,
		`DROP TABLE IF EXISTS sections`,
		`DROP TABLE IF EXISTS schedules`,
		`DROP TABLE IF EXISTS venues`,
		`CREATE TABLE schedules (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			url TEXT NOT NULL,
			title TEXT NOT NULL,
			venue TEXT NOT NULL,
			venue_url TEXT,
			schedule_datetime TEXT NOT NULL,
			locations TEXT NOT NULL DEFAULT '{}',
			registration TEXT NOT NULL DEFAULT '{}',
			description TEXT
		)`,
		`CREATE TABLE sections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			sequence TEXT NOT NULL,
			status TEXT,
			schedule_id INTEGER
		)`,
		`CREATE TABLE events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			event_date TEXT NOT NULL,
			location TEXT NOT NULL,
			section_id INTEGER
		)`,
		`CREATE TABLE venues (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			tel TEXT,
			address TEXT,
			mail TEXT,
			url TEXT,
			fax TEXT,
			contact TEXT
		)`,
		`CREATE INDEX idx_sections_title ON sections (title)`,
		`CREATE INDEX idx_sections_schedule_id ON sections (schedule_id)`,
		`CREATE INDEX idx_events_section_id ON events (section_id)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
