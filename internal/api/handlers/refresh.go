package handlers

import (
	"net/http"
	"time"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
)

// RefreshHandler triggers a snapshot reload on demand.
type RefreshHandler struct {
	store *snapshot.Store
}

// NewRefreshHandler creates a new RefreshHandler
func NewRefreshHandler(store *snapshot.Store) *RefreshHandler {
	return &RefreshHandler{
		store: store,
	}
}

// RefreshResponse reports the outcome of a reload.
type RefreshResponse struct {
	Success          bool     `json:"success"`
	TransactionCount int      `json:"transaction_count"`
	PricePointCount  int      `json:"price_point_count"`
	MissingDocuments []string `json:"missing_documents"`
	LoadedAt         string   `json:"loaded_at"`
}

// Refresh reloads every document from the source and swaps in the new
// snapshot. Per-document failures are reported, not fatal; the only hard
// failure is a canceled request.
//
// Endpoint: POST /api/snapshot/refresh
func (h *RefreshHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Refresh(r.Context())
	if err != nil {
		errorResponse := map[string]string{
			"error":  "failed to refresh snapshot",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	missing := snap.Missing
	if missing == nil {
		missing = []string{}
	}

	respondJSON(w, http.StatusOK, RefreshResponse{
		Success:          true,
		TransactionCount: len(snap.Transactions),
		PricePointCount:  len(snap.PriceHistory),
		MissingDocuments: missing,
		LoadedAt:         snap.LoadedAt.Format(time.RFC3339),
	})
}
