package housekeeping

import (
	"context"
	"testing"
	"time"
)

func TestFlattenIntel(t *testing.T) {
	records := []GuestIntel{
		{
			GuestName:   "Dana Reyes",
			Occasion:    "Anniversary",
			Preferences: []string{"High floor", "Extra pillows"},
			Dietary:     []string{"Vegetarian"},
			CapturedAt:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			GuestName:   "Dana Reyes",
			Occasion:    "Birthday",
			Preferences: []string{"High floor", "Quiet room"},
			Requests:    []string{"Late checkout"},
			CapturedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	got := flattenIntel(records)
	want := []string{
		"Occasion: Anniversary",
		"High floor",
		"Extra pillows",
		"Quiet room",
		"Vegetarian",
		"Late checkout",
	}
	if len(got) != len(want) {
		t.Fatalf("flattenIntel = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flattenIntel[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFlattenIntelNoOccasion(t *testing.T) {
	got := flattenIntel([]GuestIntel{{GuestName: "Sam", Preferences: []string{"Firm mattress"}}})
	if len(got) != 1 || got[0] != "Firm mattress" {
		t.Fatalf("flattenIntel = %v, want [Firm mattress]", got)
	}
}

func TestFlattenIntelEmpty(t *testing.T) {
	if got := flattenIntel(nil); got != nil {
		t.Fatalf("flattenIntel(nil) = %v, want nil", got)
	}
}

func TestMemoryIntelligenceMostRecentFirst(t *testing.T) {
	intel := NewMemoryIntelligence()
	intel.Add(GuestIntel{GuestName: "Dana Reyes", Occasion: "Birthday", CapturedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)})
	intel.Add(GuestIntel{GuestName: "Dana Reyes", Occasion: "Anniversary", CapturedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)})
	intel.Add(GuestIntel{GuestName: "Someone Else", Occasion: "Conference", CapturedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)})

	records, err := intel.GetByGuest(context.Background(), "dana reyes")
	if err != nil {
		t.Fatalf("GetByGuest failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("matched %d records, want 2", len(records))
	}
	if records[0].Occasion != "Anniversary" {
		t.Fatalf("first record occasion = %q, want most recent (Anniversary)", records[0].Occasion)
	}
}

func TestMemoryIntelligenceMiss(t *testing.T) {
	intel := NewMemoryIntelligence()
	records, err := intel.GetByGuest(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("GetByGuest failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("matched %d records, want 0", len(records))
	}
}
