// Package persistence provides SQLite-backed storage: a key-value blob
// table for simulation state plus an append-only event log.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/crowncourt/internal/diplomacy"
)

// Store wraps a SQLite connection. It satisfies diplomacy.BlobStore.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return st, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		kind TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_day ON events(day);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Load returns the blob stored under key, or (nil, nil) if the key has
// never been written.
func (s *Store) Load(key string) ([]byte, error) {
	var blob []byte
	err := s.conn.Get(&blob, "SELECT value FROM state WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", key, err)
	}
	return blob, nil
}

// Save upserts a blob under key.
func (s *Store) Save(key string, blob []byte) error {
	_, err := s.conn.Exec(
		"INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)",
		key, blob,
	)
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// AppendEvents appends diplomacy events to the log.
func (s *Store) AppendEvents(events []diplomacy.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (day, kind, description) VALUES (?, ?, ?)",
			e.Day, string(e.Kind), e.Description,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// EventRecord is a persisted event row.
type EventRecord struct {
	Day         int    `db:"day" json:"day"`
	Kind        string `db:"kind" json:"kind"`
	Description string `db:"description" json:"description"`
}

// RecentEvents returns the most recent limit events, newest first.
func (s *Store) RecentEvents(limit int) ([]EventRecord, error) {
	var events []EventRecord
	err := s.conn.Select(&events,
		"SELECT day, kind, description FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}

// SaveMeta stores a key-value pair in simulation metadata.
func (s *Store) SaveMeta(key, value string) error {
	_, err := s.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value. Returns ("", nil) when unset.
func (s *Store) GetMeta(key string) (string, error) {
	var value string
	err := s.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// EventLogger is a diplomacy.Observer that writes every event straight
// into the event log.
type EventLogger struct {
	Store *Store
}

// Notify appends the event, logging rather than surfacing failures —
// the event log is best-effort.
func (l *EventLogger) Notify(e diplomacy.Event) {
	if err := l.Store.AppendEvents([]diplomacy.Event{e}); err != nil {
		slog.Warn("event log append failed", "kind", e.Kind, "error", err)
	}
}
