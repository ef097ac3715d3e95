package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Config captures the settings for opening the SQLite database file.
type Config struct {
	Path string
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	username      TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	surname       TEXT NOT NULL,
	role          TEXT NOT NULL,
	password_hash BLOB NOT NULL,
	salt          BLOB NOT NULL,
	address       TEXT,
	birthdate     TEXT
);

CREATE TABLE IF NOT EXISTS products (
	model         TEXT PRIMARY KEY,
	category      TEXT NOT NULL,
	quantity      INTEGER NOT NULL,
	details       TEXT,
	selling_price REAL NOT NULL,
	arrival_date  TEXT NOT NULL
);
`

// Open initialises the database handle, verifies connectivity and bootstraps
// the schema. The returned *sql.DB is the single shared handle injected into
// every repository.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	// modernc sqlite does not support concurrent writers on one connection.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite busy timeout: %w", err)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return db, nil
}
