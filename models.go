package housekeeping

import (
	"time"
)

// TaskStatus enumerates the lifecycle states of a cleaning task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in_progress"
	TaskComplete   TaskStatus = "complete"
)

// StaffStatus enumerates the duty states of a housekeeper.
type StaffStatus string

const (
	StaffAvailable StaffStatus = "available"
	StaffBusy      StaffStatus = "busy"
	StaffBreak     StaffStatus = "break"
	StaffOffDuty   StaffStatus = "off_duty"
)

// RoomType is the room category derived from the room number convention.
type RoomType string

const (
	RoomSuite    RoomType = "suite"
	RoomDeluxe   RoomType = "deluxe"
	RoomStandard RoomType = "standard"
)

// PriorityLevel is the coarse bucket derived from a task's priority score.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// Task is one room's cleaning obligation, from checkout to completion.
type Task struct {
	ID         string
	RoomNumber string
	Floor      int
	RoomType   RoomType

	CheckoutTime time.Time
	NextArrival  *time.Time
	NextGuestVip bool

	// NextGuestPreferences is enrichment pulled from the intelligence
	// lookup at creation time; empty when no record matched.
	NextGuestPreferences []string

	// Priority and PriorityLevel are computed once at creation and do
	// not change afterward.
	Priority      int
	PriorityLevel PriorityLevel

	// AssignedTo holds exactly two staff ids once the task is assigned,
	// and is empty while the task is pending.
	AssignedTo []string

	Status    TaskStatus
	CreatedAt time.Time

	// seq preserves creation order for tie-breaking in the rescan pass.
	seq uint64
}

// Staff is one pre-provisioned housekeeping worker.
type Staff struct {
	ID           string
	Name         string
	CurrentFloor int

	// AssignedRooms counts rooms handed to this staff member that have
	// not been completed yet.
	AssignedRooms int

	Status         StaffStatus
	RoomsCompleted int

	// AvgCleaningTime is informational only; the engine never reads it.
	AvgCleaningTime time.Duration

	// seq preserves provisioning order so assignment tie-breaks are stable.
	seq uint64
}

// CheckoutEvent is the signal that a guest has vacated a room.
type CheckoutEvent struct {
	RoomNumber    string
	NextArrival   *time.Time
	NextGuestName string
	NextGuestVip  bool
}

// QueueStatus is a read-only snapshot of the queue for display layers.
type QueueStatus struct {
	// Tasks is every known task, ordered by priority descending.
	Tasks []Task

	StaffCounts map[StaffStatus]int
	TaskCounts  map[TaskStatus]int

	PendingCount    int
	InProgressCount int
}
