package housekeeping

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ProcessCheckout converts a checkout event into a prioritized pending task
// and immediately attempts assignment. The returned task reflects the
// assignment outcome in its Status and AssignedTo fields.
func (e *Engine) ProcessCheckout(ctx context.Context, ev CheckoutEvent) (Task, error) {
	roomNumber := strings.TrimSpace(ev.RoomNumber)
	if roomNumber == "" {
		return Task{}, ErrInvalidRoom
	}

	now := e.cfg.now()
	floor := e.cfg.Rooms.Floor(roomNumber)
	roomType := e.cfg.Rooms.RoomType(roomNumber)

	prefs := e.lookupPreferences(ctx, ev.NextGuestName)

	priority := CalculatePriority(PriorityInput{
		RoomType:     roomType,
		NextGuestVip: ev.NextGuestVip,
		NextArrival:  ev.NextArrival,
	}, now)

	task := e.tasks.Create(Task{
		RoomNumber:           roomNumber,
		Floor:                floor,
		RoomType:             roomType,
		CheckoutTime:         now,
		NextArrival:          ev.NextArrival,
		NextGuestVip:         ev.NextGuestVip,
		NextGuestPreferences: prefs,
		Priority:             priority,
		PriorityLevel:        PriorityLevelFor(priority),
		CreatedAt:            now,
	})

	e.cfg.logInfo(LogEvent{
		Message:    fmt.Sprintf("Checkout on room %s: task created (%s priority, score %d)", roomNumber, task.PriorityLevel, task.Priority),
		TaskID:     task.ID,
		RoomNumber: roomNumber,
	})

	e.AutoAssign(task.ID)

	// Re-read so the returned task carries the assignment outcome.
	task, _ = e.tasks.Get(task.ID)
	return task, nil
}

// lookupPreferences consults the intelligence collaborator. A lookup
// failure is logged and treated like a miss; enrichment is best-effort.
func (e *Engine) lookupPreferences(ctx context.Context, guestName string) []string {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" || e.cfg.Intelligence == nil {
		return nil
	}

	records, err := e.cfg.Intelligence.GetByGuest(ctx, guestName)
	if err != nil {
		e.cfg.logError(LogEvent{
			Message: fmt.Sprintf("Intelligence lookup failed for guest %q", guestName),
			Err:     err,
		})
		return nil
	}
	return flattenIntel(records)
}

// AutoAssign pairs the task with the two best-located available staff.
// It returns true iff an assignment occurred. Calling it on a missing or
// non-pending task is a safe no-op, and fewer than two available staff
// leaves the task pending for a later rescan.
func (e *Engine) AutoAssign(taskID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.autoAssignLocked(taskID)
}

func (e *Engine) autoAssignLocked(taskID string) bool {
	task, ok := e.tasks.Get(taskID)
	if !ok || task.Status != TaskPending {
		return false
	}

	available := e.staff.Available()
	if len(available) < 2 {
		e.cfg.logInfo(LogEvent{
			Message:    fmt.Sprintf("Room %s queued, awaiting staff (%d available, need 2)", task.RoomNumber, len(available)),
			TaskID:     task.ID,
			RoomNumber: task.RoomNumber,
		})
		return false
	}

	// Rank by floor proximity. The sort is stable, so ties keep the
	// roster's provisioning order.
	sort.SliceStable(available, func(i, j int) bool {
		return CalculateFloorMatch(task.Floor, available[i].CurrentFloor) >
			CalculateFloorMatch(task.Floor, available[j].CurrentFloor)
	})

	pair := []string{available[0].ID, available[1].ID}

	// Both staff and the task move together or not at all.
	if _, err := e.tasks.Assign(task.ID, pair); err != nil {
		e.cfg.logError(LogEvent{
			Message: fmt.Sprintf("Assignment of room %s failed", task.RoomNumber),
			TaskID:  task.ID,
			Err:     err,
		})
		return false
	}
	if err := e.staff.Assign(pair, task.Floor); err != nil {
		e.cfg.logError(LogEvent{
			Message:  fmt.Sprintf("Staff binding for room %s failed", task.RoomNumber),
			TaskID:   task.ID,
			StaffIDs: pair,
			Err:      err,
		})
		return false
	}

	e.cfg.logInfo(LogEvent{
		Message:    fmt.Sprintf("Room %s assigned to %s and %s", task.RoomNumber, available[0].Name, available[1].Name),
		TaskID:     task.ID,
		RoomNumber: task.RoomNumber,
		StaffIDs:   pair,
	})
	return true
}

// StartTask moves an assigned task into in_progress.
func (e *Engine) StartTask(taskID string) (Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, err := e.tasks.Transition(taskID, TaskInProgress)
	if err != nil {
		return Task{}, err
	}

	e.cfg.logInfo(LogEvent{
		Message:    fmt.Sprintf("Cleaning started on room %s", task.RoomNumber),
		TaskID:     task.ID,
		RoomNumber: task.RoomNumber,
		StaffIDs:   task.AssignedTo,
	})
	return task, nil
}

// CompleteTask finishes the task and releases exactly the staff bound at
// assignment time: both return to available with their completed counter
// bumped, staying on the floor where the job was.
func (e *Engine) CompleteTask(taskID string) (Task, error) {
	e.mu.Lock()

	task, err := e.tasks.Transition(taskID, TaskComplete)
	if err != nil {
		e.mu.Unlock()
		return Task{}, err
	}

	if err := e.staff.Release(task.AssignedTo); err != nil {
		e.mu.Unlock()
		return Task{}, err
	}
	e.mu.Unlock()

	elapsed := e.cfg.now().Sub(task.CheckoutTime)
	e.cfg.logInfo(LogEvent{
		Message:    fmt.Sprintf("Room %s completed in %v", task.RoomNumber, elapsed),
		TaskID:     task.ID,
		RoomNumber: task.RoomNumber,
		StaffIDs:   task.AssignedTo,
		Duration:   &elapsed,
	})

	// Freed staff may unblock the pending backlog.
	e.wake()
	return task, nil
}

// SetStaffStatus applies a shift change. Moving someone to available nudges
// the rescan manager so waiting tasks get another assignment attempt.
func (e *Engine) SetStaffStatus(staffID string, status StaffStatus) (Staff, error) {
	e.mu.Lock()
	s, err := e.staff.SetStatus(staffID, status)
	e.mu.Unlock()
	if err != nil {
		return Staff{}, err
	}

	if status == StaffAvailable {
		e.wake()
	}
	return s, nil
}

// RescanPending retries assignment over the pending backlog, highest
// priority first, stopping once staff run out. It returns how many tasks
// were assigned. The manager calls this on its ticker and wakeup signals,
// but it is safe to invoke directly.
func (e *Engine) RescanPending() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	assigned := 0
	for _, task := range e.tasks.Pending() {
		if !e.autoAssignLocked(task.ID) {
			// Backlog is ordered, so the first soft failure means the
			// roster is exhausted for this pass.
			break
		}
		assigned++
	}
	return assigned
}

// QueueStatus returns a read-only snapshot for display layers. Safe to call
// at any polling rate.
func (e *Engine) QueueStatus() QueueStatus {
	taskCounts := e.tasks.CountByStatus()
	return QueueStatus{
		Tasks:           e.tasks.List(),
		StaffCounts:     e.staff.CountByStatus(),
		TaskCounts:      taskCounts,
		PendingCount:    taskCounts[TaskPending],
		InProgressCount: taskCounts[TaskInProgress],
	}
}
