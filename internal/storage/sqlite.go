package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/sauravjha/registrar/internal/app/models"
)

// SQLiteSlot keeps the snapshot as a single JSON blob in an embedded SQLite
// database, one row keyed by the slot name.
type SQLiteSlot struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteSlot opens (or creates) the database at path and ensures the slot
// table exists.
func NewSQLiteSlot(path string, lgr zerolog.Logger) (*SQLiteSlot, error) {
	if path == "" {
		path = "registrar.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS registrar_state (
		slot TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SQLiteSlot{db: db, logger: lgr}, nil
}

// Load reads the stored snapshot. No row means an empty snapshot.
func (s *SQLiteSlot) Load(ctx context.Context) (models.Snapshot, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM registrar_state WHERE slot = ?`, SlotName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read snapshot row")
		return models.Snapshot{}, fmt.Errorf("select snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		s.logger.Error().Err(err).Msg("Snapshot payload is corrupt")
		return models.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}

// Save upserts the snapshot row.
func (s *SQLiteSlot) Save(ctx context.Context, snapshot models.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO registrar_state (slot, payload) VALUES (?, ?)
		 ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload`,
		SlotName, payload)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
