package housekeeping

import (
	"time"
)

// Config holds the settings and collaborators needed by the scheduling engine.
type Config struct {
	// Intelligence is the read-only guest-preference lookup consulted on
	// checkout. If nil, tasks are created without preference enrichment.
	Intelligence IntelligenceLookup

	// Rooms derives floor and room type from a room number. If nil, the
	// default digit convention (DefaultRoomPolicy) is used.
	Rooms RoomMetadata

	// Clock supplies "now" for checkout timestamps and urgency scoring.
	// If nil, time.Now is used. Tests inject a frozen clock here.
	Clock func() time.Time

	// RescanInterval is how frequently the rescan manager sweeps the
	// pending backlog even without a wakeup signal.
	RescanInterval time.Duration

	// InfoLog is called for informational or success logs.
	// If nil, defaults to printing to stdout.
	InfoLog func(ev LogEvent)

	// ErrorLog is called for error logs.
	// If nil, defaults to printing to stderr.
	ErrorLog func(ev LogEvent)
}

const defaultRescanInterval = 30 * time.Second

func (c *Config) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

func (c *Config) rescanInterval() time.Duration {
	if c.RescanInterval <= 0 {
		return defaultRescanInterval
	}
	return c.RescanInterval
}
