package usecase

import (
	"sync"
	"time"

	"AuditScanner/internal/domain"
)

// DebouncedWriter coalesces rapid successive plan snapshots into a single
// write: every Schedule cancels and restarts the quiet-period timer, and only
// the last scheduled snapshot fires.
type DebouncedWriter struct {
	mu      sync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	pending []domain.StoredCourse
	write   func([]domain.StoredCourse)
}

// NewDebouncedWriter builds a writer with the given quiet period.
func NewDebouncedWriter(quiet time.Duration, write func([]domain.StoredCourse)) *DebouncedWriter {
	if quiet <= 0 {
		quiet = 2 * time.Second
	}
	return &DebouncedWriter{quiet: quiet, write: write}
}

// Schedule records the latest snapshot and restarts the quiet-period timer.
func (w *DebouncedWriter) Schedule(snapshot []domain.StoredCourse) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = snapshot
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.quiet, w.fire)
}

// Flush writes any pending snapshot immediately and cancels the timer.
func (w *DebouncedWriter) Flush() {
	w.fire()
}

// Stop cancels any pending write without firing it.
func (w *DebouncedWriter) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = nil
}

func (w *DebouncedWriter) fire() {
	w.mu.Lock()
	snapshot := w.pending
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	if snapshot != nil && w.write != nil {
		w.write(snapshot)
	}
}
