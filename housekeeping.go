package housekeeping

import (
	"context"
	"sync"
	"time"
)

// Engine is the housekeeping scheduling core: it turns checkout events into
// prioritized tasks, pairs them with staff, and tracks them to completion.
// All mutable state lives in the two stores handed to New.
type Engine struct {
	cfg   *Config
	tasks *TaskStore
	staff *StaffStore

	// mu serializes every operation that reads and then mutates across
	// the two stores. AutoAssign's read-decide-mutate must be one
	// critical section or two concurrent calls could double-book staff.
	mu sync.Mutex

	mgr *Manager // set once the rescan manager starts
}

// New builds an engine over explicit store instances. Missing config
// collaborators fall back to defaults (see Config).
func New(cfg Config, tasks *TaskStore, staff *StaffStore) *Engine {
	if tasks == nil {
		tasks = NewTaskStore()
	}
	if staff == nil {
		staff = NewStaffStore()
	}
	if cfg.Rooms == nil {
		cfg.Rooms = DefaultRoomPolicy()
	}

	return &Engine{
		cfg:   &cfg,
		tasks: tasks,
		staff: staff,
	}
}

// Tasks exposes the task store for read access by callers that seed or
// inspect state directly (tests, demos).
func (e *Engine) Tasks() *TaskStore { return e.tasks }

// Staff exposes the staff store, typically for provisioning the roster.
func (e *Engine) Staff() *StaffStore { return e.staff }

// StartRescan launches the backlog rescan manager. It returns immediately;
// call Shutdown to stop it. Without the manager, a task left pending for
// lack of staff is only retried when a caller triggers assignment again.
func (e *Engine) StartRescan(ctx context.Context) {
	if e.mgr != nil {
		e.cfg.logError(LogEvent{
			Message: "Rescan manager already started on this engine.",
		})
		return
	}
	e.mgr = startManager(ctx, e)
}

// Shutdown gracefully stops the rescan manager, waiting up to timeout.
func (e *Engine) Shutdown(timeout time.Duration) {
	if e.mgr == nil {
		e.cfg.logInfo(LogEvent{
			Message: "No rescan manager to shut down (did you call StartRescan?).",
		})
		return
	}
	e.mgr.Shutdown(timeout)
	e.mgr = nil
	e.cfg.logInfo(LogEvent{Message: "Housekeeping engine shutdown complete."})
}

// wake nudges the rescan manager after staff become available. Non-blocking;
// a full signal channel means a sweep is already due.
func (e *Engine) wake() {
	if e.mgr == nil {
		return
	}
	select {
	case e.mgr.wakeup <- struct{}{}:
		// rescan triggered
	default:
		// signal already queued; ignore
	}
}
