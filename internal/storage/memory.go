package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sauravjha/registrar/internal/app/models"
)

// MemorySlot holds the snapshot in memory. Used by tests and as a storage
// driver for throwaway runs. It still round-trips through JSON so it behaves
// like the durable slots.
type MemorySlot struct {
	mu      sync.Mutex
	payload []byte
	saves   int

	// FailSaves makes Save return an error, for exercising the best-effort
	// persistence path.
	FailSaves bool
}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Load decodes the last saved snapshot, or returns an empty one.
func (m *MemorySlot) Load(_ context.Context) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return models.Snapshot{}, nil
	}
	var snapshot models.Snapshot
	if err := json.Unmarshal(m.payload, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}

// Save encodes and stores the snapshot.
func (m *MemorySlot) Save(_ context.Context, snapshot models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return fmt.Errorf("save disabled")
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	m.payload = payload
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MemorySlot) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
