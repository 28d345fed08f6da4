package housekeeping

import (
	"time"
)

// PriorityInput feeds CalculatePriority. It is transient and never stored.
type PriorityInput struct {
	RoomType     RoomType
	NextGuestVip bool
	NextArrival  *time.Time
}

const (
	basePriority  = 10
	suiteBonus    = 30
	deluxeBonus   = 15
	vipBonus      = 20
	urgencyBonus  = 20
	urgencyWindow = 2 * time.Hour

	highThreshold   = 80
	mediumThreshold = 50
)

// CalculatePriority computes the additive priority score for a task.
// The weights are fixed and the result is deterministic for a given now.
func CalculatePriority(in PriorityInput, now time.Time) int {
	score := basePriority

	switch in.RoomType {
	case RoomSuite:
		score += suiteBonus
	case RoomDeluxe:
		score += deluxeBonus
	}

	if in.NextGuestVip {
		score += vipBonus
	}

	// Urgent only when the arrival is strictly ahead of now and strictly
	// inside the two-hour window. Past or distant arrivals earn nothing.
	if in.NextArrival != nil {
		until := in.NextArrival.Sub(now)
		if until > 0 && until < urgencyWindow {
			score += urgencyBonus
		}
	}

	return score
}

// CalculateFloorMatch returns the proximity bonus used to rank staff for a
// task. It is a selection signal only and is never persisted on the task.
func CalculateFloorMatch(taskFloor, staffFloor int) int {
	diff := taskFloor - staffFloor
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 50
	case 1:
		return 25
	default:
		return 0
	}
}

// PriorityLevelFor buckets a score: >= 80 high, 50..79 medium, < 50 low.
func PriorityLevelFor(score int) PriorityLevel {
	switch {
	case score >= highThreshold:
		return PriorityHigh
	case score >= mediumThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
