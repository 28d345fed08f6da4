package housekeeping

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager owns the backlog rescan goroutine. The source of this engine only
// attempted assignment at task creation, so a task left pending by a staff
// shortage starved until something poked it; the manager closes that gap by
// sweeping the pending backlog on a ticker and on wakeup signals.
type Manager struct {
	engine *Engine
	cfg    *Config
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	wakeup chan struct{}
}

func startManager(ctx context.Context, engine *Engine) *Manager {
	mgrCtx, cancel := context.WithCancel(ctx)
	mgr := &Manager{
		engine: engine,
		cfg:    engine.cfg,
		ctx:    mgrCtx,
		cancel: cancel,
		wakeup: make(chan struct{}, 1),
	}

	mgr.cfg.logInfo(LogEvent{
		Message: fmt.Sprintf("Starting backlog rescan every %v...", mgr.cfg.rescanInterval()),
	})

	mgr.wg.Add(1)
	go func() {
		defer mgr.wg.Done()
		mgr.run()
	}()

	return mgr
}

func (m *Manager) run() {
	ticker := time.NewTicker(m.cfg.rescanInterval())
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			m.cfg.logInfo(LogEvent{Message: "Rescan manager context canceled, stopping."})
			return

		case <-ticker.C:
			m.sweep()

		case <-m.wakeup:
			m.sweep()
		}
	}
}

func (m *Manager) sweep() {
	start := time.Now()
	assigned := m.engine.RescanPending()
	if assigned == 0 {
		return
	}

	elapsed := time.Since(start)
	m.cfg.logInfo(LogEvent{
		Message:  fmt.Sprintf("Rescan assigned %d pending task(s) in %v", assigned, elapsed),
		Duration: &elapsed,
	})
}

// Shutdown attempts a graceful shutdown: cancel context, wait for the sweep
// goroutine up to 'timeout'.
func (m *Manager) Shutdown(timeout time.Duration) {
	m.cfg.logInfo(LogEvent{Message: "Shutdown requested. Stopping rescan manager..."})
	m.cancel()

	doneCh := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(doneCh)
	}()

	select {
	case <-doneCh:
		m.cfg.logInfo(LogEvent{Message: "Rescan manager exited cleanly."})
	case <-time.After(timeout):
		m.cfg.logError(LogEvent{
			Message: fmt.Sprintf("Shutdown timed out after %v. Rescan may still be running.", timeout),
		})
	}
}
