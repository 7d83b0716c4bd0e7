// Package chartdata derives the chart-ready structures consumed by the
// frontend's rendering widgets. Every function here is a pure, total function
// over one immutable snapshot of fetched documents: malformed or absent input
// coerces to zero values, nothing is mutated, and the full result is
// recomputed on every load.
package chartdata

import "github.com/wdaytrack/Insider-Tracker-Backend/internal/model"

// MergeEvents aligns discrete insider transactions to the price timeline so
// they can be overlaid on the price line as markers rather than interpolated
// into it.
//
// Transactions partition by type string equality into the Sales and Purchases
// series; any other type value is silently dropped from both. The marker x is
// the transaction's own date, even when that date has no matching price point.
// On a categorical axis a marker may therefore sit off the line; that is an
// accepted trade-off over date snapping.
//
// An empty price sequence makes the whole chart report no data, independent of
// how many transactions exist.
func MergeEvents(prices []model.PricePoint, transactions []model.Transaction) model.PriceEventChart {
	chart := model.PriceEventChart{
		Sales:     []model.EventPoint{},
		Purchases: []model.EventPoint{},
	}
	if len(prices) == 0 {
		chart.Prices = []model.PricePoint{}
		return chart
	}

	chart.HasData = true
	chart.Prices = prices

	for _, tx := range transactions {
		point := model.EventPoint{
			X:         tx.TransactionDate,
			Y:         tx.PricePerShare,
			Executive: tx.ExecutiveName,
			Title:     tx.ExecutiveTitle,
			Shares:    tx.Shares,
			Value:     tx.TotalValue,
			Type:      tx.TransactionType,
		}

		switch tx.TransactionType {
		case model.TypeSale:
			chart.Sales = append(chart.Sales, point)
			chart.TotalSalesValue += tx.TotalValue
		case model.TypePurchase:
			chart.Purchases = append(chart.Purchases, point)
			chart.TotalPurchasesValue += tx.TotalValue
		}
	}

	chart.SaleCount = len(chart.Sales)
	chart.PurchaseCount = len(chart.Purchases)

	return chart
}
