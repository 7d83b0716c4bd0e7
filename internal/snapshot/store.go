package snapshot

import (
	"context"
	"sync/atomic"
)

// emptySnapshot is served before the first successful load so transforms
// always operate on a complete, if empty, snapshot.
var emptySnapshot = &Snapshot{
	Missing: []string{
		DocTransactions, DocPriceHistory, DocOwnership,
		DocCluster, DocExecutives, DocStats,
	},
}

// Store holds the current snapshot. Reads see a complete snapshot at all
// times; Refresh swaps in a full replacement atomically, so concurrent view
// requests never observe a partially updated state and no locking is needed
// on the read path.
type Store struct {
	loader  *Loader
	current atomic.Pointer[Snapshot]
}

// NewStore creates a Store that refreshes through the given loader.
func NewStore(loader *Loader) *Store {
	s := &Store{loader: loader}
	s.current.Store(emptySnapshot)
	return s
}

// Current returns the active snapshot. Never nil.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Refresh loads a new snapshot and makes it current. On error (context
// cancellation) the previous snapshot stays active.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.current.Store(snap)
	return snap, nil
}
