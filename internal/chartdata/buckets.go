package chartdata

import (
	"math"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

// OthersLabel names the synthesized remainder bucket.
const OthersLabel = "Others"

// percentPrecision rounds display percentages to one decimal place.
const percentPrecision = 10

// TopK regroups a holder collection (pre-sorted descending by value) into the
// first k records as named buckets plus one "Others" bucket holding the sum of
// everything beyond index k. The "Others" bucket is emitted only when that
// remainder is strictly positive, so the regrouping is lossless: bucket values
// always sum to exactly the input values.
//
// k is a presentation parameter, not a data invariant; negative k is treated
// as zero.
func TopK(records []model.HolderRecord, k int) []model.Bucket {
	if k < 0 {
		k = 0
	}

	cut := k
	if cut > len(records) {
		cut = len(records)
	}

	buckets := make([]model.Bucket, 0, cut+1)
	for _, rec := range records[:cut] {
		buckets = append(buckets, model.Bucket{
			Label: rec.InvestorName,
			Value: rec.ValueDollars,
		})
	}

	var remainder float64
	for _, rec := range records[cut:] {
		remainder += rec.ValueDollars
	}
	if remainder > 0 {
		buckets = append(buckets, model.Bucket{
			Label:       OthersLabel,
			Value:       remainder,
			IsRemainder: true,
		})
	}

	return buckets
}

// Percentage computes value's share of total, rounded to one decimal place.
// A zero total yields 0 rather than a division error.
func Percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(value/total*100*percentPrecision) / percentPrecision
}

// Distribute produces the ownership breakdown payload: top-k buckets with
// each bucket's percentage of total. The total is supplied by the caller
// (normally total_institutional_value from the ownership summary) so the
// transform stays pure; a zero total zeroes every percentage.
//
// An empty record collection yields a payload with HasData false, which the
// caller must render as an explicit no-data state instead of an empty chart.
func Distribute(records []model.HolderRecord, k int, total float64) model.Distribution {
	buckets := TopK(records, k)
	if len(buckets) == 0 {
		return model.Distribution{Slices: []model.DistributionSlice{}}
	}

	dist := model.Distribution{
		HasData: true,
		Slices:  make([]model.DistributionSlice, len(buckets)),
	}
	for i, b := range buckets {
		dist.Slices[i] = model.DistributionSlice{
			Label:       b.Label,
			Value:       b.Value,
			Percent:     Percentage(b.Value, total),
			IsRemainder: b.IsRemainder,
		}
		dist.TotalValue += b.Value
	}

	return dist
}
