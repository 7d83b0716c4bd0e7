package handlers

import (
	"net/http"
	"time"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/version"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	store *snapshot.Store
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(store *snapshot.Store) *SystemHandler {
	return &SystemHandler{
		store: store,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status           string   `json:"status"`
	Snapshot         string   `json:"snapshot"`
	SnapshotLoadedAt string   `json:"snapshot_loaded_at,omitempty"`
	MissingDocuments []string `json:"missing_documents,omitempty"`
}

// Health reports whether a data snapshot has been loaded. The server is
// considered degraded, not down, while documents are missing: views over the
// absent documents render their no-data state and everything else works.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()

	if !snap.Loaded() {
		response := HealthResponse{
			Status:   "starting",
			Snapshot: "not loaded",
		}
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	response := HealthResponse{
		Status:           "healthy",
		Snapshot:         "loaded",
		SnapshotLoadedAt: snap.LoadedAt.Format(time.RFC3339),
		MissingDocuments: snap.Missing,
	}
	if len(snap.Missing) > 0 {
		response.Status = "degraded"
	}
	respondJSON(w, http.StatusOK, response)
}

// VersionInfoResponse represents the version check response
type VersionInfoResponse struct {
	AppVersion string `json:"app_version"`
}

// Version handles GET requests to retrieve version information.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionInfoResponse{
		AppVersion: version.Version,
	})
}
