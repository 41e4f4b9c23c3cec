// Package aggregate computes cost totals and per-model breakdowns over daily records.
// Every function here is pure.
package aggregate

import (
	"sort"

	"github.com/j-veylop/costboard/internal/models"
)

// Window sizes used by the dashboard.
const (
	WeekDays  = 7
	MonthDays = 30
)

// SumCost adds up the total cost of records. Missing costs count as zero.
func SumCost(records []models.DailyRecord) float64 {
	total := 0.0
	for i := range records {
		total += records[i].CostOrZero()
	}
	return total
}

// WindowLastN returns the trailing n records in their original order.
// A series shorter than n is returned whole; n <= 0 yields an empty window.
func WindowLastN(series []models.DailyRecord, n int) []models.DailyRecord {
	if n <= 0 {
		return series[:0:0]
	}
	if n >= len(series) {
		return series
	}
	return series[len(series)-n:]
}

// AggregateByModel sums each model's cost across records and sorts the result
// by total descending. Equal totals keep the order in which the model was first seen.
func AggregateByModel(records []models.DailyRecord) []models.ModelShare {
	index := make(map[string]int)
	var shares []models.ModelShare

	for i := range records {
		for _, mc := range records[i].ByModel {
			pos, ok := index[mc.Name]
			if !ok {
				pos = len(shares)
				index[mc.Name] = pos
				shares = append(shares, models.ModelShare{Model: mc.Name})
			}
			shares[pos].CostUSD += mc.CostOrZero()
		}
	}

	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].CostUSD > shares[b].CostUSD
	})

	return shares
}

// TopN returns at most the first n shares.
func TopN(shares []models.ModelShare, n int) []models.ModelShare {
	if n <= 0 {
		return nil
	}
	if len(shares) <= n {
		return shares
	}
	return shares[:n]
}

// DailySeries returns one label and one cost per record, in record order.
func DailySeries(records []models.DailyRecord) (labels []string, values []float64) {
	labels = make([]string, len(records))
	values = make([]float64, len(records))
	for i := range records {
		labels[i] = records[i].Date
		values[i] = records[i].CostOrZero()
	}
	return labels, values
}
