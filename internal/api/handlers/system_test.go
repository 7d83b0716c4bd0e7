package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/testutil"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("returns healthy status when all documents loaded", func(t *testing.T) {
		dir := testutil.SetupDataDir(t, map[string]any{
			snapshot.DocTransactions: []model.Transaction{testutil.NewTransaction().Build()},
			snapshot.DocPriceHistory: []model.PricePoint{testutil.NewPricePoint("2024-01-15", 250, 1)},
			snapshot.DocOwnership:    model.OwnershipSummary{},
			snapshot.DocCluster:      []model.ClusterEntry{},
			snapshot.DocExecutives:   []model.ExecutiveSummary{},
			snapshot.DocStats:        model.DashboardStats{},
		})
		handler := NewSystemHandler(testutil.NewTestStore(t, dir))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response HealthResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Status != "healthy" {
			t.Errorf("Expected status 'healthy', got '%s'", response.Status)
		}

		if response.Snapshot != "loaded" {
			t.Errorf("Expected snapshot 'loaded', got '%s'", response.Snapshot)
		}

		if len(response.MissingDocuments) != 0 {
			t.Errorf("Expected no missing documents, got %v", response.MissingDocuments)
		}
	})

	t.Run("returns degraded status when documents are missing", func(t *testing.T) {
		handler := NewSystemHandler(testutil.NewEmptyStore(t))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		// Degraded snapshots still serve traffic, so the endpoint stays 200.
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response HealthResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Status != "degraded" {
			t.Errorf("Expected status 'degraded', got '%s'", response.Status)
		}

		if len(response.MissingDocuments) != 6 {
			t.Errorf("Expected all 6 documents missing, got %v", response.MissingDocuments)
		}
	})

	t.Run("returns 503 before the first snapshot load", func(t *testing.T) {
		dir := t.TempDir()
		store := snapshot.NewStore(snapshot.NewLoader(snapshot.NewFileSource(dir)))
		handler := NewSystemHandler(store)

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d: %s", w.Code, w.Body.String())
		}

		var response HealthResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Status != "starting" {
			t.Errorf("Expected status 'starting', got '%s'", response.Status)
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	t.Run("returns version information successfully", func(t *testing.T) {
		handler := NewSystemHandler(testutil.NewEmptyStore(t))

		req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
		w := httptest.NewRecorder()

		handler.Version(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response VersionInfoResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.AppVersion == "" {
			t.Error("Expected app_version to be populated")
		}
	})
}
