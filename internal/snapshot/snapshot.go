package snapshot

import (
	"time"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

// Snapshot is one immutable fetch result covering every document the views
// read. A snapshot is never patched; a refresh builds a complete replacement.
// Documents that failed to load are present as their zero values and listed
// in Missing, so every transform stays total over the snapshot.
type Snapshot struct {
	Transactions []model.Transaction
	PriceHistory []model.PricePoint // chronological
	Ownership    model.OwnershipSummary
	Cluster      []model.ClusterEntry
	Executives   []model.ExecutiveSummary
	Stats        model.DashboardStats

	LoadedAt time.Time
	Missing  []string
}

// Loaded reports whether this snapshot came from an actual load cycle.
func (s *Snapshot) Loaded() bool {
	return !s.LoadedAt.IsZero()
}

// IsMissing reports whether the named document failed to load.
func (s *Snapshot) IsMissing(name string) bool {
	for _, m := range s.Missing {
		if m == name {
			return true
		}
	}
	return false
}
