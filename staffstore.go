package housekeeping

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// StaffStore owns the pre-provisioned staff roster: availability, floor
// location, and workload counters. The engine is the only writer during
// scheduling; shift changes come in through SetStatus.
type StaffStore struct {
	mu      sync.RWMutex
	nextSeq uint64
	staff   map[string]Staff
}

func NewStaffStore() *StaffStore {
	return &StaffStore{
		staff: make(map[string]Staff),
	}
}

// Add provisions one staff member. An empty ID gets a generated one, and an
// empty status defaults to available.
func (ss *StaffStore) Add(s Staff) Staff {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = StaffAvailable
	}
	ss.nextSeq++
	s.seq = ss.nextSeq

	ss.staff[s.ID] = s
	return s
}

// Get returns a copy of the staff record.
func (ss *StaffStore) Get(id string) (Staff, bool) {
	ss.mu.RLock()
	s, ok := ss.staff[id]
	ss.mu.RUnlock()
	return s, ok
}

// List returns the roster in provisioning order.
func (ss *StaffStore) List() []Staff {
	ss.mu.RLock()
	roster := make([]Staff, 0, len(ss.staff))
	for _, s := range ss.staff {
		roster = append(roster, s)
	}
	ss.mu.RUnlock()

	sort.Slice(roster, func(i, j int) bool {
		return roster[i].seq < roster[j].seq
	})
	return roster
}

// Available returns staff whose status is exactly available, in
// provisioning order. Staff on break or off duty never appear here.
func (ss *StaffStore) Available() []Staff {
	var available []Staff
	for _, s := range ss.List() {
		if s.Status == StaffAvailable {
			available = append(available, s)
		}
	}
	return available
}

// CountByStatus tallies staff per status.
func (ss *StaffStore) CountByStatus() map[StaffStatus]int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	counts := map[StaffStatus]int{
		StaffAvailable: 0,
		StaffBusy:      0,
		StaffBreak:     0,
		StaffOffDuty:   0,
	}
	for _, s := range ss.staff {
		counts[s.Status]++
	}
	return counts
}

// Assign marks each listed staff member busy, bumps their assigned-room
// count, and relocates them to the task's floor.
func (ss *StaffStore) Assign(ids []string, floor int) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	for _, id := range ids {
		if _, ok := ss.staff[id]; !ok {
			return ErrStaffNotFound
		}
	}
	for _, id := range ids {
		s := ss.staff[id]
		s.Status = StaffBusy
		s.AssignedRooms++
		s.CurrentFloor = floor
		ss.staff[id] = s
	}
	return nil
}

// Release returns the listed staff to available after a completed room,
// crediting each one's completed counter. Floors are left where the job
// was; the crew stays put until the next assignment moves them.
func (ss *StaffStore) Release(ids []string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	for _, id := range ids {
		if _, ok := ss.staff[id]; !ok {
			return ErrStaffNotFound
		}
	}
	for _, id := range ids {
		s := ss.staff[id]
		s.Status = StaffAvailable
		if s.AssignedRooms > 0 {
			s.AssignedRooms--
		}
		s.RoomsCompleted++
		ss.staff[id] = s
	}
	return nil
}

// SetStatus applies a shift change (available, break, off_duty). Busy is
// owned by the assignment path and is rejected here, as is any change while
// the staff member is bound to an active task.
func (ss *StaffStore) SetStatus(id string, status StaffStatus) (Staff, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	s, ok := ss.staff[id]
	if !ok {
		return Staff{}, ErrStaffNotFound
	}
	if status == StaffBusy || s.Status == StaffBusy {
		return Staff{}, &TransitionError{ID: id, From: string(s.Status), To: string(status)}
	}

	s.Status = status
	ss.staff[id] = s
	return s, nil
}
