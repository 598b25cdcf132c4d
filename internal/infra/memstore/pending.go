package memstore

import (
	"sync"
	"time"

	"payconnect/internal/domain/order"
	"payconnect/internal/pkg/clock"
)

// PendingStore is the process-local correlation table holding
// initiation-time metadata until the confirmation webhook consumes it.
// Entries live in process memory only: a restart between initiation and
// webhook arrival loses them, and downstream display fields degrade to
// placeholders.
//
// Entries carry an explicit TTL so abandoned initiations cannot
// accumulate forever; the webhook path deletes entries it consumes.
type PendingStore struct {
	mu      sync.Mutex
	entries map[string]pendingEntry
	ttl     time.Duration
	clock   clock.Clock
}

type pendingEntry struct {
	tx        order.PendingTransaction
	expiresAt time.Time
}

func NewPendingStore(ttl time.Duration, clk clock.Clock) *PendingStore {
	return &PendingStore{
		entries: make(map[string]pendingEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *PendingStore) Put(ref string, tx order.PendingTransaction) {
	if ref == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	tx.Ref = ref
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	s.entries[ref] = pendingEntry{tx: tx, expiresAt: now.Add(s.ttl)}
}

// Get returns the live entry for ref. Expired entries are dropped
// lazily here in addition to the periodic sweep.
func (s *PendingStore) Get(ref string) (order.PendingTransaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[ref]
	if !ok {
		return order.PendingTransaction{}, false
	}
	if !s.clock.Now().Before(e.expiresAt) {
		delete(s.entries, ref)
		return order.PendingTransaction{}, false
	}
	return e.tx, true
}

func (s *PendingStore) Delete(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, ref)
}

// MergeSessionID attaches the processor's OTP session identifier to an
// existing entry. A missing entry is a no-op.
func (s *PendingStore) MergeSessionID(ref, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[ref]
	if !ok {
		return
	}
	e.tx.SessionID = sessionID
	s.entries[ref] = e
}

// SweepExpired removes every expired entry and reports how many were
// dropped. Called periodically by the store janitor.
func (s *PendingStore) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	dropped := 0
	for ref, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, ref)
			dropped++
		}
	}
	return dropped
}

func (s *PendingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
