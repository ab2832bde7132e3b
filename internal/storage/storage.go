// Package storage persists the five data collections as a single snapshot in
// a fixed-name key-value slot. Backends differ only in where the slot lives;
// all of them round-trip the snapshot exactly through JSON.
package storage

import (
	"context"

	"github.com/sauravjha/registrar/internal/app/models"
)

// SlotName is the fixed key the snapshot is stored under.
const SlotName = "student-registration-data"

// Slot is the persistence adapter the store writes through. Load returns an
// empty snapshot (and no error) when nothing has been saved yet; an error
// means the stored content was unreadable, which callers treat as empty.
type Slot interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snapshot models.Snapshot) error
}
