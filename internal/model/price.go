package model

// PricePoint is one day on the price timeline. Dates are calendar-date strings
// (YYYY-MM-DD) and double as categorical chart axis labels, so they are kept
// as-is rather than parsed into time.Time.
type PricePoint struct {
	Date         string  `json:"date"`
	Price        float64 `json:"price"`
	Transactions int     `json:"transactions"`
}
