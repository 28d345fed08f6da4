package housekeeping

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// GuestIntel is one previously captured note about a guest. Records are
// produced by an upstream extraction service; this engine only reads them.
type GuestIntel struct {
	GuestName   string
	Occasion    string
	Preferences []string
	Dietary     []string
	Requests    []string
	CapturedAt  time.Time
}

// IntelligenceLookup is the read-only collaborator consulted on checkout.
// GetByGuest returns records for the named guest, most recent first.
// An empty result is not an error; enrichment is simply skipped.
type IntelligenceLookup interface {
	GetByGuest(ctx context.Context, guestName string) ([]GuestIntel, error)
}

// flattenIntel turns matched records into the ordered preference list stored
// on a task: an "Occasion: ..." entry from the most recent record when
// present, then the de-duplicated union of preferences, dietary notes, and
// requests across all records, in that order.
func flattenIntel(records []GuestIntel) []string {
	if len(records) == 0 {
		return nil
	}

	var out []string
	if occ := strings.TrimSpace(records[0].Occasion); occ != "" {
		out = append(out, "Occasion: "+occ)
	}

	seen := make(map[string]bool)
	appendUnique := func(items []string) {
		for _, item := range items {
			item = strings.TrimSpace(item)
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
		}
	}

	for _, rec := range records {
		appendUnique(rec.Preferences)
	}
	for _, rec := range records {
		appendUnique(rec.Dietary)
	}
	for _, rec := range records {
		appendUnique(rec.Requests)
	}

	return out
}

// MemoryIntelligence is an in-memory IntelligenceLookup, used in tests and
// demos where no database of materialized records exists.
type MemoryIntelligence struct {
	mu      sync.RWMutex
	records []GuestIntel
}

func NewMemoryIntelligence() *MemoryIntelligence {
	return &MemoryIntelligence{}
}

// Add stores a record. Safe for concurrent use.
func (m *MemoryIntelligence) Add(rec GuestIntel) {
	m.mu.Lock()
	m.records = append(m.records, rec)
	m.mu.Unlock()
}

// GetByGuest returns records whose guest name matches, case-insensitively,
// most recent first.
func (m *MemoryIntelligence) GetByGuest(_ context.Context, guestName string) ([]GuestIntel, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []GuestIntel
	for _, rec := range m.records {
		if strings.EqualFold(rec.GuestName, guestName) {
			matched = append(matched, rec)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CapturedAt.After(matched[j].CapturedAt)
	})
	return matched, nil
}
