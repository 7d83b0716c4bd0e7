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

func TestOwnershipHandler_Summary(t *testing.T) {
	t.Run("returns summary with formatted figures", func(t *testing.T) {
		dir := testutil.SetupDataDir(t, map[string]any{
			snapshot.DocOwnership: model.OwnershipSummary{
				TotalInstitutionalShares: 150_000_000,
				TotalInstitutionalValue:  41_000_000_000,
				NumberOfInstitutions:     2150,
				LargestHolder:            "Vanguard Group",
				LargestHolderShares:      23_000_000,
				LastUpdated:              "2024-02-14",
				HoldingsByInvestor: []model.HolderRecord{
					testutil.NewHolder("Vanguard Group", 23_000_000, 6_200_000_000),
				},
			},
		})
		handler := NewOwnershipHandler(testutil.NewTestStore(t, dir), 15)

		req := httptest.NewRequest(http.MethodGet, "/api/ownership", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response OwnershipResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if !response.HasData {
			t.Error("Expected has_data true")
		}

		if response.TotalInstitutionalSharesFormatted != "150.00M" {
			t.Errorf("Expected '150.00M', got '%s'", response.TotalInstitutionalSharesFormatted)
		}

		if response.TotalInstitutionalValueFormatted != "$41.00B" {
			t.Errorf("Expected '$41.00B', got '%s'", response.TotalInstitutionalValueFormatted)
		}

		if response.LargestHolder != "Vanguard Group" {
			t.Errorf("Expected largest holder Vanguard Group, got '%s'", response.LargestHolder)
		}
	})

	t.Run("caps the holder list at the table size", func(t *testing.T) {
		holders := []model.HolderRecord{
			testutil.NewHolder("Vanguard Group", 23_000_000, 6_200_000_000),
			testutil.NewHolder("BlackRock", 15_000_000, 4_100_000_000),
			testutil.NewHolder("Fidelity", 9_000_000, 2_400_000_000),
		}
		dir := testutil.SetupDataDir(t, map[string]any{
			snapshot.DocOwnership: model.OwnershipSummary{
				NumberOfInstitutions: 3,
				HoldingsByInvestor:   holders,
			},
		})
		handler := NewOwnershipHandler(testutil.NewTestStore(t, dir), 2)

		req := httptest.NewRequest(http.MethodGet, "/api/ownership", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		var response OwnershipResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.HoldingsByInvestor) != 2 {
			t.Errorf("Expected 2 holders listed, got %d", len(response.HoldingsByInvestor))
		}

		// The scalar totals still describe the full holder set.
		if response.NumberOfInstitutions != 3 {
			t.Errorf("Expected 3 institutions, got %d", response.NumberOfInstitutions)
		}
	})

	t.Run("top parameter overrides the cap", func(t *testing.T) {
		dir := testutil.SetupDataDir(t, map[string]any{
			snapshot.DocOwnership: model.OwnershipSummary{
				HoldingsByInvestor: []model.HolderRecord{
					testutil.NewHolder("Vanguard Group", 23_000_000, 6_200_000_000),
					testutil.NewHolder("BlackRock", 15_000_000, 4_100_000_000),
				},
			},
		})
		handler := NewOwnershipHandler(testutil.NewTestStore(t, dir), 15)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/ownership", map[string]string{"top": "1"})
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		var response OwnershipResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.HoldingsByInvestor) != 1 {
			t.Errorf("Expected 1 holder listed, got %d", len(response.HoldingsByInvestor))
		}
	})

	t.Run("rejects a non-numeric top parameter", func(t *testing.T) {
		handler := NewOwnershipHandler(testutil.NewEmptyStore(t), 15)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/ownership", map[string]string{"top": "many"})
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns empty summary when document is missing", func(t *testing.T) {
		handler := NewOwnershipHandler(testutil.NewEmptyStore(t), 15)

		req := httptest.NewRequest(http.MethodGet, "/api/ownership", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response OwnershipResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.HasData {
			t.Error("Expected has_data false")
		}

		if response.HoldingsByInvestor == nil {
			t.Error("Expected holdings array to be initialized")
		}
	})
}
