package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/apperrors"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

// NormalizePriceHistory converts either observed price_history.json schema
// into one canonical chronological sequence before any transform runs.
//
// Two variants exist across generator versions:
//   - an array of {date, price, transactions} objects, newest first
//   - an object {dates: [...], prices: [...]} of parallel arrays, oldest first
//
// The array variant is documented as newest-first but older files were written
// chronologically, so order is detected from the endpoint dates (ISO strings
// compare lexicographically) and reversed only when actually descending.
func NormalizePriceHistory(data []byte) ([]model.PricePoint, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty price history document", apperrors.ErrUnexpectedShape)
	}

	if trimmed[0] == '[' {
		var points []model.PricePoint
		if err := json.Unmarshal(trimmed, &points); err != nil {
			return nil, fmt.Errorf("%w: price history array: %v", apperrors.ErrUnexpectedShape, err)
		}
		if len(points) > 1 && points[0].Date > points[len(points)-1].Date {
			reverse(points)
		}
		return points, nil
	}

	var doc struct {
		Dates        []string  `json:"dates"`
		Prices       []float64 `json:"prices"`
		Transactions []int     `json:"transactions"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: price history object: %v", apperrors.ErrUnexpectedShape, err)
	}

	n := len(doc.Dates)
	if len(doc.Prices) < n {
		n = len(doc.Prices)
	}
	points := make([]model.PricePoint, n)
	for i := 0; i < n; i++ {
		points[i] = model.PricePoint{
			Date:  doc.Dates[i],
			Price: doc.Prices[i],
		}
		if i < len(doc.Transactions) {
			points[i].Transactions = doc.Transactions[i]
		}
	}
	return points, nil
}

func reverse(points []model.PricePoint) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// decodeArray unmarshals data as a JSON array of T. Anything other than an
// array is a shape failure; the caller coerces to an empty collection.
func decodeArray[T any](data []byte, what string) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrUnexpectedShape, what, err)
	}
	return items, nil
}
