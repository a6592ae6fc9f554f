package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store holds one session's transaction log and recurring-payment records
// in an in-memory SQLite database. Nothing here ever touches disk: the
// database lives exactly as long as the session and is discarded at
// sign-out.
type Store struct {
	db *sql.DB
}

// Open creates a fresh in-memory database. The pool is pinned to a single
// connection because every :memory: connection would otherwise get its own
// empty database.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close discards the database and everything in it.
func (s *Store) Close() error {
	return s.db.Close()
}
