package chartdata

import (
	"math"
	"testing"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

func someHolders() []model.HolderRecord {
	// Pre-sorted descending by value, as the generator guarantees.
	return []model.HolderRecord{
		{InvestorName: "Vanguard Group", Shares: 23_000_000, ValueDollars: 6_200_000_000},
		{InvestorName: "BlackRock", Shares: 15_000_000, ValueDollars: 4_100_000_000},
		{InvestorName: "Fidelity", Shares: 9_000_000, ValueDollars: 2_450_000_000},
		{InvestorName: "State Street", Shares: 7_000_000, ValueDollars: 1_900_000_000},
		{InvestorName: "Geode Capital", Shares: 4_000_000, ValueDollars: 1_100_000_000},
	}
}

func sumHolders(records []model.HolderRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.ValueDollars
	}
	return total
}

func sumBuckets(buckets []model.Bucket) float64 {
	var total float64
	for _, b := range buckets {
		total += b.Value
	}
	return total
}

// TestTopK tests the top-K regrouping.
//
// WHY: Bucketing must be lossless regrouping, not sampling. Losing or
// double-counting a remainder dollar corrupts every percentage built on top.
func TestTopK(t *testing.T) {
	t.Run("first k records verbatim plus Others remainder", func(t *testing.T) {
		buckets := TopK(someHolders(), 3)

		if len(buckets) != 4 {
			t.Fatalf("Expected 4 buckets (3 named + Others), got %d", len(buckets))
		}
		if buckets[0].Label != "Vanguard Group" || buckets[2].Label != "Fidelity" {
			t.Errorf("Named buckets out of order: %+v", buckets)
		}
		last := buckets[3]
		if last.Label != OthersLabel || !last.IsRemainder {
			t.Errorf("Expected Others remainder bucket, got %+v", last)
		}
		if last.Value != 1_900_000_000+1_100_000_000 {
			t.Errorf("Expected remainder 3000000000, got %v", last.Value)
		}
	})

	t.Run("bucketing is lossless for any k", func(t *testing.T) {
		holders := someHolders()
		want := sumHolders(holders)

		for k := 0; k <= len(holders)+2; k++ {
			if got := sumBuckets(TopK(holders, k)); got != want {
				t.Errorf("k=%d: bucket sum %v != input sum %v", k, got, want)
			}
		}
	})

	t.Run("no Others bucket when k covers the whole input", func(t *testing.T) {
		holders := someHolders()

		for _, k := range []int{len(holders), len(holders) + 5} {
			buckets := TopK(holders, k)
			if len(buckets) != len(holders) {
				t.Errorf("k=%d: expected %d buckets, got %d", k, len(holders), len(buckets))
			}
			for _, b := range buckets {
				if b.IsRemainder {
					t.Errorf("k=%d: unexpected remainder bucket %+v", k, b)
				}
			}
		}
	})

	t.Run("zero-value tail produces no Others bucket", func(t *testing.T) {
		holders := append(someHolders(), model.HolderRecord{InvestorName: "Empty Fund", ValueDollars: 0})

		buckets := TopK(holders, 5)

		if len(buckets) != 5 {
			t.Errorf("Expected remainder suppressed for zero sum, got %d buckets", len(buckets))
		}
	})

	t.Run("negative k treated as zero", func(t *testing.T) {
		buckets := TopK(someHolders(), -1)

		if len(buckets) != 1 || !buckets[0].IsRemainder {
			t.Fatalf("Expected single Others bucket, got %+v", buckets)
		}
		if buckets[0].Value != sumHolders(someHolders()) {
			t.Errorf("Expected Others to hold the full total, got %v", buckets[0].Value)
		}
	})

	t.Run("empty input yields empty bucket sequence", func(t *testing.T) {
		if buckets := TopK(nil, 8); len(buckets) != 0 {
			t.Errorf("Expected no buckets, got %d", len(buckets))
		}
	})
}

func TestPercentage(t *testing.T) {
	t.Run("rounds to one decimal place", func(t *testing.T) {
		if got := Percentage(1, 3); got != 33.3 {
			t.Errorf("Expected 33.3, got %v", got)
		}
	})

	t.Run("zero total yields zero, never a division error", func(t *testing.T) {
		if got := Percentage(500, 0); got != 0 {
			t.Errorf("Expected 0 for zero total, got %v", got)
		}
	})
}

func TestDistribute(t *testing.T) {
	t.Run("percentages sum to roughly 100 for a positive total", func(t *testing.T) {
		holders := someHolders()
		total := sumHolders(holders)

		dist := Distribute(holders, 3, total)

		if !dist.HasData {
			t.Fatal("Expected distribution to have data")
		}
		var pctSum float64
		for _, s := range dist.Slices {
			pctSum += s.Percent
		}
		// Each slice rounds to one decimal, so allow half a point of drift.
		if math.Abs(pctSum-100) > 0.5 {
			t.Errorf("Expected percentages near 100, got %v", pctSum)
		}
		if dist.TotalValue != total {
			t.Errorf("Expected total %v preserved, got %v", total, dist.TotalValue)
		}
	})

	t.Run("zero total zeroes every percentage", func(t *testing.T) {
		dist := Distribute(someHolders(), 3, 0)

		for _, s := range dist.Slices {
			if s.Percent != 0 {
				t.Errorf("Expected 0%% for %s, got %v", s.Label, s.Percent)
			}
		}
	})

	t.Run("empty input yields explicit no-data payload", func(t *testing.T) {
		dist := Distribute(nil, 8, 0)

		if dist.HasData {
			t.Error("Expected HasData false for empty input")
		}
		if len(dist.Slices) != 0 {
			t.Errorf("Expected no slices, got %d", len(dist.Slices))
		}
	})
}
