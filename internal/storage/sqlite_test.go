package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func TestSQLiteSlotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	slot, err := NewSQLiteSlot(path, zerolog.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = slot.Close() })

	got, err := slot.Load(context.Background())
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("fresh database should be empty, got %+v", got)
	}

	want := sampleSnapshot()
	if err := slot.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = slot.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteSlotSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	slot, err := NewSQLiteSlot(path, zerolog.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	want := sampleSnapshot()
	if err := slot.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := slot.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLiteSlot(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("reopen mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteSlotUpsertsSingleRow(t *testing.T) {
	slot, err := NewSQLiteSlot(filepath.Join(t.TempDir(), "state.db"), zerolog.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = slot.Close() })

	if err := slot.Save(context.Background(), sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := slot.Save(context.Background(), sampleSnapshot()); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var rows int
	if err := slot.db.QueryRow(`SELECT COUNT(*) FROM registrar_state`).Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single slot row, got %d", rows)
	}
}
