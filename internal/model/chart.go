package model

// Derived, chart-ready structures. All of these are recomputed from scratch on
// every load and never mutated after creation; a refresh replaces them wholesale.

// EventPoint is a discrete transaction marker overlaid on the price line.
// X is the transaction's own date, used verbatim with no snapping to the
// nearest trading day on the price timeline.
type EventPoint struct {
	X         string  `json:"x"`
	Y         float64 `json:"y"`
	Executive string  `json:"executive"`
	Title     string  `json:"title,omitempty"`
	Shares    float64 `json:"shares"`
	Value     float64 `json:"value"`
	Type      string  `json:"type"`
}

// PriceEventChart is the price line plus the sale/purchase overlay series.
// HasData is false when the price sequence is empty, regardless of how many
// transactions exist; the price series is the primary axis.
type PriceEventChart struct {
	HasData             bool         `json:"has_data"`
	Prices              []PricePoint `json:"prices"`
	Sales               []EventPoint `json:"sales"`
	Purchases           []EventPoint `json:"purchases"`
	TotalSalesValue     float64      `json:"total_sales_value"`
	TotalPurchasesValue float64      `json:"total_purchases_value"`
	SaleCount           int          `json:"sale_count"`
	PurchaseCount       int          `json:"purchase_count"`
}

// Bucket is a named aggregate produced by top-K regrouping. IsRemainder is
// true only for the synthesized "Others" bucket.
type Bucket struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	IsRemainder bool    `json:"is_remainder"`
}

// DistributionSlice is a Bucket enriched with its share of the total for
// donut/table rendering.
type DistributionSlice struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	Percent     float64 `json:"percent"`
	IsRemainder bool    `json:"is_remainder"`
}

// Distribution is the ownership breakdown view payload.
type Distribution struct {
	HasData    bool                `json:"has_data"`
	Slices     []DistributionSlice `json:"slices"`
	TotalValue float64             `json:"total_value"`
}

// ProjectedPoint is one holder mapped into 2D plus radius and palette slot for
// bubble rendering. Name, Shares, Value and FilingDate carry the originating
// record through for tooltips.
type ProjectedPoint struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	R           float64 `json:"r"`
	Color       string  `json:"color"`
	BorderColor string  `json:"border_color"`
	Name        string  `json:"name"`
	Shares      float64 `json:"shares"`
	Value       float64 `json:"value"`
	FilingDate  string  `json:"filing_date"`
}

// BubbleChart is the institutional cluster view payload.
type BubbleChart struct {
	HasData bool             `json:"has_data"`
	Points  []ProjectedPoint `json:"points"`
}

// SummarySnapshot captures the change from the first to the last value of a
// chronologically ordered numeric series.
type SummarySnapshot struct {
	CurrentValue       float64 `json:"current_value"`
	DeltaAbsolute      float64 `json:"delta_absolute"`
	DeltaPercent       float64 `json:"delta_percent"`
	FormattedMagnitude string  `json:"formatted_magnitude"`
}
