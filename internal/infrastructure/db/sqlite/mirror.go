// Package sqlite provides the local snapshot mirror: a small SQLite file
// acting as a durable key-value area, consulted when the external store
// is unreachable or empty.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Mirror stores one serialized payload per collection kind.
type Mirror struct {
	db *sql.DB
}

// Open opens (creating if needed) the mirror database at path and ensures
// the schema exists.
func Open(ctx context.Context, path string) (*Mirror, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS snapshots (
		kind       TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &Mirror{db: db}, nil
}

// Close releases the underlying database handle.
func (m *Mirror) Close() error {
	return m.db.Close()
}

// Put replaces the stored payload for kind wholesale.
func (m *Mirror) Put(ctx context.Context, kind string, payload []byte) error {
	const q = `INSERT INTO snapshots (kind, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	if _, err := m.db.ExecContext(ctx, q, kind, payload, time.Now().UTC().Unix()); err != nil {
		return fmt.Errorf("mirror put %s: %w", kind, err)
	}
	return nil
}

// Get returns the stored payload for kind, or nil when the kind has never
// been stored.
func (m *Mirror) Get(ctx context.Context, kind string) ([]byte, error) {
	var payload []byte
	err := m.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE kind = ?`, kind).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("mirror get %s: %w", kind, err)
	}
	return payload, nil
}
