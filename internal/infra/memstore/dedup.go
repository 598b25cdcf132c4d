package memstore

import (
	"sync"
	"time"
)

// SuppressionWindow is a time-boxed set of already-processed order
// references. It absorbs near-simultaneous webhook retries from the
// processor; the order store's own existence check remains the durable
// duplicate guard. Process-local, so it only covers a single instance.
type SuppressionWindow struct {
	mu     sync.Mutex
	seen   map[string]*time.Timer
	ttl    time.Duration
	closed bool
}

func NewSuppressionWindow(ttl time.Duration) *SuppressionWindow {
	return &SuppressionWindow{
		seen: make(map[string]*time.Timer),
		ttl:  ttl,
	}
}

// ShouldProcess reports whether ref has not been seen inside the
// current window.
func (w *SuppressionWindow) ShouldProcess(ref string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, seen := w.seen[ref]
	return !seen
}

// RecordProcessed marks ref as handled and schedules its removal after
// the window elapses. Empty references are never recorded.
func (w *SuppressionWindow) RecordProcessed(ref string) {
	if ref == "" {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if _, seen := w.seen[ref]; seen {
		return
	}
	w.seen[ref] = time.AfterFunc(w.ttl, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.seen, ref)
	})
}

// Close stops all pending expiry timers. Used on shutdown and in tests.
func (w *SuppressionWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	for ref, t := range w.seen {
		t.Stop()
		delete(w.seen, ref)
	}
}
