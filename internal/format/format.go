// Package format renders the numeric displays derived from chart data.
//
// One magnitude rule is applied everywhere: values of a billion or more get a
// "B" suffix, a million or more an "M" suffix, and share counts of a thousand
// or more a "K" suffix. Everything below its threshold falls back to
// grouped-thousands formatting. The rule is a pure function of magnitude;
// there is no locale branching beyond the currency symbol.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

const (
	billion  = 1_000_000_000
	million  = 1_000_000
	thousand = 1_000
)

// Currency formats a dollar amount. Amounts below a million render as
// zero-decimal grouped currency, e.g. "$999" or "$12,345".
func Currency(v float64) string {
	switch {
	case math.Abs(v) >= billion:
		return fmt.Sprintf("$%.2fB", v/billion)
	case math.Abs(v) >= million:
		return fmt.Sprintf("$%.2fM", v/million)
	default:
		return "$" + humanize.Comma(int64(math.Round(v)))
	}
}

// Shares formats a share count. Unlike Currency, counts get the "K" tier,
// so a thousand shares renders as "1.00K".
func Shares(v float64) string {
	switch {
	case math.Abs(v) >= billion:
		return fmt.Sprintf("%.2fB", v/billion)
	case math.Abs(v) >= million:
		return fmt.Sprintf("%.2fM", v/million)
	case math.Abs(v) >= thousand:
		return fmt.Sprintf("%.2fK", v/thousand)
	default:
		return humanize.Comma(int64(math.Round(v)))
	}
}

// Count formats a plain integer with grouped thousands.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
