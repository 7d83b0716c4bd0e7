package chartdata

import (
	"sort"
	"time"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

// Fallback derivations for the aggregate documents. The generator normally
// ships executives.json, stats.json and price_history.json alongside the raw
// transactions; when one of them is missing from a snapshot, the same
// aggregation is recomputed here from transactions.json.

// DeriveExecutives groups transactions by executive: total value of sales,
// transaction count, and the latest transaction date per executive, sorted by
// total sales descending.
func DeriveExecutives(transactions []model.Transaction) []model.ExecutiveSummary {
	byName := make(map[string]*model.ExecutiveSummary)
	order := make([]string, 0)

	for _, tx := range transactions {
		summary, ok := byName[tx.ExecutiveName]
		if !ok {
			summary = &model.ExecutiveSummary{
				Name:              tx.ExecutiveName,
				LatestTransaction: tx.TransactionDate,
			}
			byName[tx.ExecutiveName] = summary
			order = append(order, tx.ExecutiveName)
		}

		if tx.TransactionType == model.TypeSale {
			summary.TotalSales += tx.TotalValue
		}
		summary.TransactionCount++

		// Dates are ISO strings, so lexicographic comparison is chronological.
		if tx.TransactionDate > summary.LatestTransaction {
			summary.LatestTransaction = tx.TransactionDate
		}
	}

	result := make([]model.ExecutiveSummary, 0, len(order))
	for _, name := range order {
		result = append(result, *byName[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSales > result[j].TotalSales
	})

	return result
}

// DeriveStats computes the dashboard headline figures from raw transactions.
func DeriveStats(transactions []model.Transaction, now time.Time) model.DashboardStats {
	if len(transactions) == 0 {
		return model.DashboardStats{LastUpdated: "Never"}
	}

	stats := model.DashboardStats{
		TotalTransactions: len(transactions),
		LastUpdated:       now.UTC().Format("2006-01-02 15:04 UTC"),
	}

	names := make(map[string]struct{})
	for _, tx := range transactions {
		if tx.TransactionType == model.TypeSale {
			stats.TotalSalesValue += tx.TotalValue
		}
		names[tx.ExecutiveName] = struct{}{}
	}
	stats.UniqueExecutives = len(names)

	return stats
}

// DerivePriceHistory builds a chronological price timeline from transactions:
// sales with a positive price per share, grouped by transaction date, averaged
// per day. Purchases are excluded to match the generated document.
func DerivePriceHistory(transactions []model.Transaction) []model.PricePoint {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, tx := range transactions {
		if tx.TransactionType != model.TypeSale || tx.PricePerShare <= 0 {
			continue
		}
		sums[tx.TransactionDate] += tx.PricePerShare
		counts[tx.TransactionDate]++
	}

	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]model.PricePoint, len(dates))
	for i, date := range dates {
		points[i] = model.PricePoint{
			Date:         date,
			Price:        round2(sums[date] / float64(counts[date])),
			Transactions: counts[date],
		}
	}

	return points
}
