// Package store persists the task snapshot the scheduling engine works
// from. Only the CLI talks to it; the engine itself receives plain slices
// and never mutates task state.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

func Open() (*DB, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	return OpenAt(filepath.Join(home, ".config", "timebox", "timebox.db"))
}

func OpenAt(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	store := &DB{db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return store, nil
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			duration INTEGER NOT NULL,
			priority TEXT NOT NULL,
			deadline DATETIME,
			dependencies TEXT NOT NULL DEFAULT '[]',
			energy TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			participants TEXT NOT NULL DEFAULT '[]',
			mode TEXT NOT NULL,
			effort INTEGER NOT NULL,
			flexibility TEXT NOT NULL,
			status TEXT NOT NULL,
			reward INTEGER NOT NULL,
			tools TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}

	return nil
}
