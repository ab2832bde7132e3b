package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sauravjha/registrar/internal/app/models"
)

// PostgresSlot keeps the snapshot as a single JSONB row in Postgres. The
// table is created on construction; there is no further schema to migrate.
type PostgresSlot struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresSlot ensures the slot table exists on the given pool.
func NewPostgresSlot(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) (*PostgresSlot, error) {
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS registrar_state (
		slot TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &PostgresSlot{pool: pool, logger: lgr}, nil
}

// Load reads the stored snapshot. No row means an empty snapshot.
func (p *PostgresSlot) Load(ctx context.Context) (models.Snapshot, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx,
		`SELECT payload FROM registrar_state WHERE slot = $1`, SlotName).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Snapshot{}, nil
	}
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed to read snapshot row")
		return models.Snapshot{}, fmt.Errorf("select snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		p.logger.Error().Err(err).Msg("Snapshot payload is corrupt")
		return models.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}

// Save upserts the snapshot row.
func (p *PostgresSlot) Save(ctx context.Context, snapshot models.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO registrar_state (slot, payload, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		SlotName, payload)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
