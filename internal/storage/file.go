package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/sauravjha/registrar/internal/app/models"
)

// FileSlot keeps the snapshot as one JSON document on disk. Writes go through
// a temp file and rename so a crash mid-save never leaves a torn document.
type FileSlot struct {
	path   string
	logger zerolog.Logger
}

// NewFileSlot creates a file-backed slot at path, creating parent directories
// as needed. An empty path defaults to the slot name in the working directory.
func NewFileSlot(path string, lgr zerolog.Logger) (*FileSlot, error) {
	if path == "" {
		path = SlotName + ".json"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	return &FileSlot{path: path, logger: lgr}, nil
}

// Load reads the stored snapshot. A missing file is an empty snapshot;
// unreadable or corrupt content is logged and reported as an error so the
// caller can fall back to empty.
func (f *FileSlot) Load(_ context.Context) (models.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Snapshot{}, nil
		}
		f.logger.Error().Err(err).Str("path", f.path).Msg("Failed to read snapshot file")
		return models.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		f.logger.Error().Err(err).Str("path", f.path).Msg("Snapshot file is corrupt")
		return models.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}

// Save writes the snapshot atomically.
func (f *FileSlot) Save(_ context.Context, snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
