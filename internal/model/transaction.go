package model

// Transaction type values as they appear in Form 4 derived data. Any other
// value belongs to neither overlay series and is excluded from both.
const (
	TypeSale     = "Sale"
	TypePurchase = "Purchase"
)

// Transaction represents a single insider transaction extracted from a Form 4 filing.
// Produced by the external data generator; treated as trusted, immutable input.
// TotalValue is assumed to equal Shares × PricePerShare and is not recomputed.
type Transaction struct {
	ID              string  `json:"id"`
	ExecutiveName   string  `json:"executive_name"`
	ExecutiveTitle  string  `json:"executive_title"`
	TransactionDate string  `json:"transaction_date"`
	TransactionType string  `json:"transaction_type"`
	Shares          float64 `json:"shares"`
	PricePerShare   float64 `json:"price_per_share"`
	TotalValue      float64 `json:"total_value"`
	FilingDate      string  `json:"filing_date"`
	FormType        string  `json:"form_type,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// ExecutiveSummary aggregates all transactions reported by one executive.
type ExecutiveSummary struct {
	Name              string  `json:"name"`
	TotalSales        float64 `json:"total_sales"`
	TransactionCount  int     `json:"transaction_count"`
	LatestTransaction string  `json:"latest_transaction"`
}

// DashboardStats holds the headline figures for the dashboard view.
type DashboardStats struct {
	TotalSalesValue   float64 `json:"total_sales_value"`
	TotalTransactions int     `json:"total_transactions"`
	UniqueExecutives  int     `json:"unique_executives"`
	LastUpdated       string  `json:"last_updated"`
}
