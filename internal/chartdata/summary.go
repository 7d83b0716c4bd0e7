package chartdata

import (
	"math"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/format"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

// Summarize derives change statistics from a chronologically ordered numeric
// series: first element is the earliest value, last the most recent. A zero
// first value defines the percentage change as 0 instead of dividing by zero.
// An empty series yields the zero snapshot.
func Summarize(series []float64) model.SummarySnapshot {
	if len(series) == 0 {
		return model.SummarySnapshot{FormattedMagnitude: format.Currency(0)}
	}

	first := series[0]
	last := series[len(series)-1]

	snap := model.SummarySnapshot{
		CurrentValue:       last,
		DeltaAbsolute:      last - first,
		FormattedMagnitude: format.Currency(last),
	}
	if first != 0 {
		snap.DeltaPercent = round2((last - first) / first * 100)
	}

	return snap
}

// PriceSeries extracts the raw price values from a chronological price
// timeline for use with Summarize.
func PriceSeries(prices []model.PricePoint) []float64 {
	series := make([]float64, len(prices))
	for i, p := range prices {
		series[i] = p.Price
	}
	return series
}

// round2 rounds a float64 value to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
