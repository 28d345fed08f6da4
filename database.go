package housekeeping

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SQLIntelligence is an IntelligenceLookup backed by a guest_intel table.
// It speaks database/sql only; the caller supplies the open *sql.DB and
// imports whichever driver fits the deployment.
type SQLIntelligence struct {
	db *sql.DB
}

// NewSQLIntelligence wraps the connection and creates the guest_intel table
// if it does not exist yet.
func NewSQLIntelligence(db *sql.DB) (*SQLIntelligence, error) {
	if db == nil {
		return nil, errors.New("intelligence store: db connection is required")
	}
	s := &SQLIntelligence{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLIntelligence) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS guest_intel (
			id TEXT NOT NULL,
			guest_name TEXT NOT NULL,
			occasion TEXT,
			preferences TEXT,
			dietary TEXT,
			requests TEXT,
			captured_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_guest_intel_name ON guest_intel(guest_name)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init guest_intel schema: %w", err)
		}
	}
	return nil
}

// Save materializes one record. The engine itself never calls this; it
// exists for the upstream capture pipeline and for seeding demos and tests.
func (s *SQLIntelligence) Save(ctx context.Context, rec GuestIntel) error {
	name := strings.TrimSpace(rec.GuestName)
	if name == "" {
		return errors.New("intelligence store: guest name is required")
	}

	prefs, err := json.Marshal(rec.Preferences)
	if err != nil {
		return err
	}
	dietary, err := json.Marshal(rec.Dietary)
	if err != nil {
		return err
	}
	requests, err := json.Marshal(rec.Requests)
	if err != nil {
		return err
	}

	capturedAt := rec.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}

	query := `INSERT INTO guest_intel (id, guest_name, occasion, preferences, dietary, requests, captured_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		uuid.NewString(),
		name,
		rec.Occasion,
		string(prefs),
		string(dietary),
		string(requests),
		capturedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert guest intel: %w", err)
	}
	return nil
}

// GetByGuest returns the guest's records, most recent first. Name matching
// is case-insensitive.
func (s *SQLIntelligence) GetByGuest(ctx context.Context, guestName string) ([]GuestIntel, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, nil
	}

	query := `
		SELECT guest_name, COALESCE(occasion, ''), preferences, dietary, requests, captured_at
		FROM guest_intel
		WHERE LOWER(guest_name) = LOWER(?)
		ORDER BY captured_at DESC`
	rows, err := s.db.QueryContext(ctx, query, guestName)
	if err != nil {
		return nil, fmt.Errorf("query guest intel: %w", err)
	}
	defer rows.Close()

	var records []GuestIntel
	for rows.Next() {
		var (
			rec        GuestIntel
			prefs      []byte
			dietary    []byte
			requests   []byte
			capturedAt int64
		)
		if err := rows.Scan(&rec.GuestName, &rec.Occasion, &prefs, &dietary, &requests, &capturedAt); err != nil {
			return nil, err
		}
		if len(prefs) > 0 {
			_ = json.Unmarshal(prefs, &rec.Preferences)
		}
		if len(dietary) > 0 {
			_ = json.Unmarshal(dietary, &rec.Dietary)
		}
		if len(requests) > 0 {
			_ = json.Unmarshal(requests, &rec.Requests)
		}
		rec.CapturedAt = time.Unix(capturedAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}
