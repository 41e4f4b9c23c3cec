// Package currency formats USD costs and their TWD conversions for display.
package currency

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Placeholder is rendered in place of any value that is missing.
const Placeholder = "—"

const (
	usdPrefix = "USD $"
	twdPrefix = "約 TWD $"

	usdPlaces = 4
	twdPlaces = 2

	// exactExp keeps every binary digit of a float64 when converting.
	exactExp = -1075
)

// FormatUSD renders a cost with exactly four decimals, e.g. "USD $12.5000".
// Nil, NaN and infinite values render as the placeholder.
func FormatUSD(v *float64) string {
	if !usable(v) {
		return Placeholder
	}
	return usdPrefix + fixed(*v, usdPlaces)
}

// FormatTWD converts a USD cost at rate and renders it with two decimals,
// e.g. "約 TWD $300.00". Either input missing yields the placeholder.
func FormatTWD(usd, rate *float64) string {
	if !usable(usd) || !usable(rate) {
		return Placeholder
	}
	twd := *usd * *rate
	if !usable(&twd) {
		return Placeholder
	}
	return twdPrefix + fixed(twd, twdPlaces)
}

// FormatAxis renders a chart tick value as " $<v>".
func FormatAxis(v float64) string {
	return " $" + FormatRate(v)
}

// FormatRate renders a number using the shortest exact representation.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// USD is FormatUSD for a plain value.
func USD(v float64) string {
	return FormatUSD(&v)
}

// fixed rounds the exact binary value of v, not its shortest decimal form,
// so 1.005 is "1.00". Exact ties round away from zero.
func fixed(v float64, places int32) string {
	return decimal.NewFromFloatWithExponent(v, exactExp).StringFixed(places)
}

func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
