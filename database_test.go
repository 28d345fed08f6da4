package housekeeping

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "intel.db"))
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLIntelligenceRoundTrip(t *testing.T) {
	store, err := NewSQLIntelligence(openTestDB(t))
	if err != nil {
		t.Fatalf("init intelligence store failed: %v", err)
	}
	ctx := context.Background()

	older := GuestIntel{
		GuestName:   "Dana Reyes",
		Occasion:    "Birthday",
		Preferences: []string{"Quiet room"},
		Requests:    []string{"Late checkout"},
		CapturedAt:  time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	newer := GuestIntel{
		GuestName:   "Dana Reyes",
		Occasion:    "Anniversary",
		Preferences: []string{"High floor", "Extra pillows"},
		Dietary:     []string{"Vegetarian"},
		CapturedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, older); err != nil {
		t.Fatalf("save older record failed: %v", err)
	}
	if err := store.Save(ctx, newer); err != nil {
		t.Fatalf("save newer record failed: %v", err)
	}

	records, err := store.GetByGuest(ctx, "Dana Reyes")
	if err != nil {
		t.Fatalf("GetByGuest failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("matched %d records, want 2", len(records))
	}
	if records[0].Occasion != "Anniversary" {
		t.Fatalf("first record occasion = %q, want Anniversary (most recent first)", records[0].Occasion)
	}
	if len(records[0].Preferences) != 2 || records[0].Preferences[0] != "High floor" {
		t.Fatalf("preferences did not round-trip: %v", records[0].Preferences)
	}
	if len(records[0].Dietary) != 1 || records[0].Dietary[0] != "Vegetarian" {
		t.Fatalf("dietary did not round-trip: %v", records[0].Dietary)
	}
	if len(records[1].Requests) != 1 || records[1].Requests[0] != "Late checkout" {
		t.Fatalf("requests did not round-trip: %v", records[1].Requests)
	}
}

func TestSQLIntelligenceCaseInsensitiveName(t *testing.T) {
	store, err := NewSQLIntelligence(openTestDB(t))
	if err != nil {
		t.Fatalf("init intelligence store failed: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, GuestIntel{GuestName: "Dana Reyes", Occasion: "Anniversary"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	records, err := store.GetByGuest(ctx, "DANA REYES")
	if err != nil {
		t.Fatalf("GetByGuest failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("matched %d records, want 1", len(records))
	}
}

func TestSQLIntelligenceMiss(t *testing.T) {
	store, err := NewSQLIntelligence(openTestDB(t))
	if err != nil {
		t.Fatalf("init intelligence store failed: %v", err)
	}

	records, err := store.GetByGuest(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("GetByGuest failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("matched %d records, want 0", len(records))
	}

	if _, err := store.GetByGuest(context.Background(), "   "); err != nil {
		t.Fatalf("blank name lookup errored: %v", err)
	}
}

func TestSQLIntelligenceRequiresName(t *testing.T) {
	store, err := NewSQLIntelligence(openTestDB(t))
	if err != nil {
		t.Fatalf("init intelligence store failed: %v", err)
	}
	if err := store.Save(context.Background(), GuestIntel{}); err == nil {
		t.Fatal("expected error saving a record without a guest name")
	}
}

func TestNewSQLIntelligenceNilDB(t *testing.T) {
	if _, err := NewSQLIntelligence(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}
