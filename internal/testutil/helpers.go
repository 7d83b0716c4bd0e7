package testutil

import (
	"context"
	"testing"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
)

// NewTestStore builds a snapshot store over a file source rooted at dir and
// performs the initial refresh.
func NewTestStore(t *testing.T, dir string) *snapshot.Store {
	t.Helper()

	loader := snapshot.NewLoader(snapshot.NewFileSource(dir))
	store := snapshot.NewStore(loader)
	if _, err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Failed to load test snapshot: %v", err)
	}
	return store
}

// NewEmptyStore builds a snapshot store whose refresh finds no documents at
// all, for exercising no-data states.
func NewEmptyStore(t *testing.T) *snapshot.Store {
	t.Helper()

	return NewTestStore(t, t.TempDir())
}
