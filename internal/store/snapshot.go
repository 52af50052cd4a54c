// Package store holds the current conversation snapshot. Snapshots are
// replaced wholesale on every successful ingestion cycle; there is no
// incremental merge and no deletion.
package store

import (
	"sync"
	"time"

	"github.com/grupoherz/conversation-dashboard/internal/model"
)

// Snapshot is the result of one ingestion cycle.
type Snapshot struct {
	Seq           uint64
	FetchedAt     time.Time
	Records       []model.RawInteraction
	Conversations []model.Conversation
	ByClient      map[string][]model.RawInteraction
}

// Store owns the live snapshot and the seeded demo conversations that
// back the non-privileged roles.
type Store struct {
	mu     sync.RWMutex
	snap   Snapshot
	seeded []model.Conversation
}

// New creates a store with the seeded demo conversation set.
func New() *Store {
	return &Store{seeded: seedConversations()}
}

// Replace installs snap unless its sequence regresses. It returns whether
// the snapshot was applied. The sequence guard keeps a slow, stale fetch
// from overwriting the result of a newer one.
func (s *Store) Replace(snap Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snap.FetchedAt.IsZero() && snap.Seq <= s.snap.Seq {
		return false
	}
	s.snap = snap
	return true
}

// Current returns the live snapshot. Callers must not mutate its slices.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Seeded returns the demo conversation set served to company and client
// roles.
func (s *Store) Seeded() []model.Conversation {
	return s.seeded
}

// History returns the chronologically ordered raw records for one
// counterparty from the live snapshot.
func (s *Store) History(client string) ([]model.RawInteraction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.snap.ByClient[client]
	return records, ok
}
