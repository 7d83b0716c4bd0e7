package handlers

import (
	"net/http"
	"strconv"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/apperrors"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/format"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
)

// OwnershipHandler serves the institutional ownership summary.
type OwnershipHandler struct {
	store    *snapshot.Store
	tableCap int
}

// NewOwnershipHandler creates a new OwnershipHandler. tableCap limits how many
// holder rows the summary lists; the scalar totals always cover every holder.
func NewOwnershipHandler(store *snapshot.Store, tableCap int) *OwnershipHandler {
	return &OwnershipHandler{
		store:    store,
		tableCap: tableCap,
	}
}

// OwnershipResponse is the ownership summary with display-formatted figures.
type OwnershipResponse struct {
	HasData                           bool                 `json:"has_data"`
	TotalInstitutionalShares          float64              `json:"total_institutional_shares"`
	TotalInstitutionalSharesFormatted string               `json:"total_institutional_shares_formatted"`
	TotalInstitutionalValue           float64              `json:"total_institutional_value"`
	TotalInstitutionalValueFormatted  string               `json:"total_institutional_value_formatted"`
	NumberOfInstitutions              int                  `json:"number_of_institutions"`
	LargestHolder                     string               `json:"largest_holder"`
	LargestHolderShares               float64              `json:"largest_holder_shares"`
	LargestHolderSharesFormatted      string               `json:"largest_holder_shares_formatted"`
	LastUpdated                       string               `json:"last_updated"`
	HoldingsByInvestor                []model.HolderRecord `json:"holdings_by_investor"`
}

// Summary returns the institutional ownership roll-up. The holder list is
// capped at the configured table size; ?top= overrides the cap per request.
//
// Endpoint: GET /api/ownership
func (h *OwnershipHandler) Summary(w http.ResponseWriter, r *http.Request) {
	limit := h.tableCap
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errorResponse := map[string]string{
				"error":  "invalid top parameter",
				"detail": apperrors.ErrInvalidTopK.Error(),
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
		limit = n
	}

	ownership := h.store.Current().Ownership

	holdings := ownership.HoldingsByInvestor
	if holdings == nil {
		holdings = []model.HolderRecord{}
	}
	if limit > 0 && len(holdings) > limit {
		holdings = holdings[:limit]
	}

	respondJSON(w, http.StatusOK, OwnershipResponse{
		HasData:                           len(holdings) > 0,
		TotalInstitutionalShares:          ownership.TotalInstitutionalShares,
		TotalInstitutionalSharesFormatted: format.Shares(ownership.TotalInstitutionalShares),
		TotalInstitutionalValue:           ownership.TotalInstitutionalValue,
		TotalInstitutionalValueFormatted:  format.Currency(ownership.TotalInstitutionalValue),
		NumberOfInstitutions:              ownership.NumberOfInstitutions,
		LargestHolder:                     ownership.LargestHolder,
		LargestHolderShares:               ownership.LargestHolderShares,
		LargestHolderSharesFormatted:      format.Shares(ownership.LargestHolderShares),
		LastUpdated:                       ownership.LastUpdated,
		HoldingsByInvestor:                holdings,
	})
}
