package handlers

import (
	"net/http"
	"strconv"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/apperrors"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/chartdata"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/config"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
)

// ChartHandler serves the chart-ready projections. Each request recomputes
// its projection in full from the current snapshot; nothing is cached or
// patched between requests.
type ChartHandler struct {
	store  *snapshot.Store
	charts config.ChartConfig
}

// NewChartHandler creates a new ChartHandler
func NewChartHandler(store *snapshot.Store, charts config.ChartConfig) *ChartHandler {
	return &ChartHandler{
		store:  store,
		charts: charts,
	}
}

// PriceEventsResponse is the overlay chart plus the price change summary.
type PriceEventsResponse struct {
	model.PriceEventChart
	PriceSummary model.SummarySnapshot `json:"price_summary"`
}

// PriceEvents returns the price line with sale/purchase markers overlaid.
//
// Endpoint: GET /api/charts/price-events
func (h *ChartHandler) PriceEvents(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()

	chart := chartdata.MergeEvents(snap.PriceHistory, snap.Transactions)
	respondJSON(w, http.StatusOK, PriceEventsResponse{
		PriceEventChart: chart,
		PriceSummary:    chartdata.Summarize(chartdata.PriceSeries(chart.Prices)),
	})
}

// Ownership returns the top-K institutional ownership breakdown.
// The ?top= query parameter overrides the configured cutoff.
//
// Endpoint: GET /api/charts/ownership?top=8
func (h *ChartHandler) Ownership(w http.ResponseWriter, r *http.Request) {
	k, err := h.topParam(r, h.charts.DistributionTopK)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "invalid top parameter",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	ownership := h.store.Current().Ownership
	dist := chartdata.Distribute(ownership.HoldingsByInvestor, k, ownership.TotalInstitutionalValue)

	respondJSON(w, http.StatusOK, dist)
}

// Cluster returns the bubble projection of the institutional cluster.
//
// Endpoint: GET /api/charts/cluster
func (h *ChartHandler) Cluster(w http.ResponseWriter, r *http.Request) {
	chart := chartdata.ProjectBubbles(h.store.Current().Cluster)
	respondJSON(w, http.StatusOK, chart)
}

// topParam reads the ?top= query parameter, falling back to def when absent.
func (h *ChartHandler) topParam(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("top")
	if raw == "" {
		return def, nil
	}
	k, err := strconv.Atoi(raw)
	if err != nil || k < 0 {
		return 0, apperrors.ErrInvalidTopK
	}
	return k, nil
}
