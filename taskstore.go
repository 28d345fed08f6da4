package housekeeping

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// TaskStore owns the task records and their status state machine. It is an
// explicit instance, constructed once and handed to the engine, so tests get
// isolation and the locking boundary stays visible.
type TaskStore struct {
	mu      sync.RWMutex
	nextSeq uint64
	tasks   map[string]Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]Task),
	}
}

// Create inserts the task in pending status with a fresh id. Priority fields
// are expected to be computed by the caller before insertion.
func (ts *TaskStore) Create(task Task) Task {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	task.ID = uuid.NewString()
	task.Status = TaskPending
	task.AssignedTo = nil
	ts.nextSeq++
	task.seq = ts.nextSeq

	ts.tasks[task.ID] = task
	return task
}

// Get returns a copy of the task.
func (ts *TaskStore) Get(id string) (Task, bool) {
	ts.mu.RLock()
	task, ok := ts.tasks[id]
	ts.mu.RUnlock()
	return task, ok
}

// List returns all tasks ordered by priority descending, creation order as
// the tiebreak.
func (ts *TaskStore) List() []Task {
	ts.mu.RLock()
	tasks := make([]Task, 0, len(ts.tasks))
	for _, t := range ts.tasks {
		tasks = append(tasks, t)
	}
	ts.mu.RUnlock()

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority > tasks[j].Priority
		}
		return tasks[i].seq < tasks[j].seq
	})
	return tasks
}

// Pending returns pending tasks ordered the same way as List. The rescan
// pass walks this slice so the highest-priority backlog is retried first.
func (ts *TaskStore) Pending() []Task {
	var pending []Task
	for _, t := range ts.List() {
		if t.Status == TaskPending {
			pending = append(pending, t)
		}
	}
	return pending
}

// CountByStatus tallies tasks per status.
func (ts *TaskStore) CountByStatus() map[TaskStatus]int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	counts := map[TaskStatus]int{
		TaskPending:    0,
		TaskAssigned:   0,
		TaskInProgress: 0,
		TaskComplete:   0,
	}
	for _, t := range ts.tasks {
		counts[t.Status]++
	}
	return counts
}

// Assign binds the staff pair and moves the task from pending to assigned.
func (ts *TaskStore) Assign(id string, staffIDs []string) (Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	task, ok := ts.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	if task.Status != TaskPending {
		return Task{}, &TransitionError{ID: id, From: string(task.Status), To: string(TaskAssigned)}
	}

	task.AssignedTo = append([]string(nil), staffIDs...)
	task.Status = TaskAssigned
	ts.tasks[id] = task
	return task, nil
}

// Transition advances the task's status along an allowed edge. Invalid edges
// are rejected with a TransitionError and leave the record untouched.
func (ts *TaskStore) Transition(id string, to TaskStatus) (Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	task, ok := ts.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	if !allowedTaskTransition(task.Status, to) {
		return Task{}, &TransitionError{ID: id, From: string(task.Status), To: string(to)}
	}

	task.Status = to
	ts.tasks[id] = task
	return task, nil
}

// allowedTaskTransition encodes the forward-only lifecycle. Assignment is
// handled by Assign, which also binds the pair, so pending -> assigned is
// not reachable through Transition.
func allowedTaskTransition(from, to TaskStatus) bool {
	switch from {
	case TaskAssigned:
		// A crew can report a room done before the start call lands.
		return to == TaskInProgress || to == TaskComplete
	case TaskInProgress:
		return to == TaskComplete
	default:
		return false
	}
}
