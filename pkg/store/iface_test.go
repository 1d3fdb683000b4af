package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/daviddao/persiancal/pkg/model"
	"github.com/daviddao/persiancal/pkg/persian"
)

// TestStoreImplementsInterface verifies at runtime that *Store satisfies
// StoreInterface by calling every method on a real store.
func TestStoreImplementsInterface(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var iface StoreInterface = s
	defer iface.Close()
	ctx := context.Background()

	o := model.Occasion{Month: 3, Day: 14, Title: "Khordad 14"}
	if err := iface.AddOccasion(ctx, &o); err != nil {
		t.Fatalf("AddOccasion: %v", err)
	}
	if _, err := iface.GetOccasion(ctx, o.ID); err != nil {
		t.Fatalf("GetOccasion: %v", err)
	}
	if all, err := iface.ListOccasions(ctx); err != nil || len(all) != 1 {
		t.Fatalf("ListOccasions = %d, %v", len(all), err)
	}
	if on, err := iface.OccasionsOn(ctx, persian.MustNew(1403, 3, 14)); err != nil || len(on) != 1 {
		t.Fatalf("OccasionsOn = %d, %v", len(on), err)
	}
	if in, err := iface.OccasionsInMonth(ctx, persian.MustNew(1403, 3, 1).YearMonth()); err != nil || len(in) != 1 {
		t.Fatalf("OccasionsInMonth = %d, %v", len(in), err)
	}
	if n, err := iface.CountOccasions(ctx); err != nil || n != 1 {
		t.Fatalf("CountOccasions = %d, %v", n, err)
	}
	if err := iface.DeleteOccasion(ctx, o.ID); err != nil {
		t.Fatalf("DeleteOccasion: %v", err)
	}
}
