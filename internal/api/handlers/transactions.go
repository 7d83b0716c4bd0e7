package handlers

import (
	"net/http"
	"sort"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/format"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
)

// TransactionHandler serves the raw transaction list and the aggregate
// summaries built from it.
type TransactionHandler struct {
	store *snapshot.Store
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(store *snapshot.Store) *TransactionHandler {
	return &TransactionHandler{
		store: store,
	}
}

// Transactions returns all transactions in the current snapshot, newest
// first by transaction date. The snapshot itself is never reordered; sorting
// happens on a copy.
//
// Endpoint: GET /api/transactions
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()

	transactions := make([]model.Transaction, len(snap.Transactions))
	copy(transactions, snap.Transactions)
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].TransactionDate > transactions[j].TransactionDate
	})

	respondJSON(w, http.StatusOK, transactions)
}

// StatsResponse is DashboardStats plus display-formatted figures.
type StatsResponse struct {
	TotalSalesValue          float64 `json:"total_sales_value"`
	TotalSalesValueFormatted string  `json:"total_sales_value_formatted"`
	TotalTransactions        int     `json:"total_transactions"`
	UniqueExecutives         int     `json:"unique_executives"`
	LastUpdated              string  `json:"last_updated"`
}

// Stats returns the dashboard headline figures.
//
// Endpoint: GET /api/stats
func (h *TransactionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Current().Stats

	respondJSON(w, http.StatusOK, StatsResponse{
		TotalSalesValue:          stats.TotalSalesValue,
		TotalSalesValueFormatted: format.Currency(stats.TotalSalesValue),
		TotalTransactions:        stats.TotalTransactions,
		UniqueExecutives:         stats.UniqueExecutives,
		LastUpdated:              stats.LastUpdated,
	})
}

// ExecutiveResponse is one executive's aggregate with formatted sales.
type ExecutiveResponse struct {
	Name                string  `json:"name"`
	TotalSales          float64 `json:"total_sales"`
	TotalSalesFormatted string  `json:"total_sales_formatted"`
	TransactionCount    int     `json:"transaction_count"`
	LatestTransaction   string  `json:"latest_transaction"`
}

// Executives returns the per-executive summary, ordered by total sales.
//
// Endpoint: GET /api/executives
func (h *TransactionHandler) Executives(w http.ResponseWriter, r *http.Request) {
	executives := h.store.Current().Executives

	response := make([]ExecutiveResponse, len(executives))
	for i, e := range executives {
		response[i] = ExecutiveResponse{
			Name:                e.Name,
			TotalSales:          e.TotalSales,
			TotalSalesFormatted: format.Currency(e.TotalSales),
			TransactionCount:    e.TransactionCount,
			LatestTransaction:   e.LatestTransaction,
		}
	}

	respondJSON(w, http.StatusOK, response)
}
