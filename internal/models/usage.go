// Package models defines data structures and domain types.
package models

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// UsageSeries is the usage document: one record per calendar day, oldest first.
type UsageSeries struct {
	AsOf *string       `json:"asOf"`
	Days []DailyRecord `json:"days"`
}

// AsOfOr returns the freshness timestamp or def when it is missing or empty.
func (u *UsageSeries) AsOfOr(def string) string {
	if u == nil || u.AsOf == nil || *u.AsOf == "" {
		return def
	}
	return *u.AsOf
}

// Records returns the daily records, or nil for a nil series.
func (u *UsageSeries) Records() []DailyRecord {
	if u == nil {
		return nil
	}
	return u.Days
}

// Latest returns the most recent day, or nil when the series is empty.
func (u *UsageSeries) Latest() *DailyRecord {
	days := u.Records()
	if len(days) == 0 {
		return nil
	}
	return &days[len(days)-1]
}

// DailyRecord holds the cost figures for a single calendar day.
type DailyRecord struct {
	Total   *DayTotal  `json:"total"`
	Date    string     `json:"date"`
	ByModel ModelCosts `json:"byModel"`
}

// DayTotal is the whole-day summary. Calls and Tokens are optional producer fields.
type DayTotal struct {
	CostUSD *float64 `json:"costUsd"`
	Calls   *int64   `json:"calls,omitempty"`
	Tokens  *int64   `json:"tokens,omitempty"`
}

// Cost returns the day's total cost, or nil when it was not recorded.
func (d *DailyRecord) Cost() *float64 {
	if d == nil || d.Total == nil {
		return nil
	}
	return d.Total.CostUSD
}

// CostOrZero returns the day's total cost, treating a missing value as zero.
func (d *DailyRecord) CostOrZero() float64 {
	if c := d.Cost(); c != nil {
		return *c
	}
	return 0
}

// ModelCost is one entry of a day's per-model breakdown.
type ModelCost struct {
	CostUSD *float64
	Calls   *int64
	Tokens  *int64
	Name    string
}

// CostOrZero returns the model cost, treating a missing value as zero.
func (m ModelCost) CostOrZero() float64 {
	if m.CostUSD == nil {
		return 0
	}
	return *m.CostUSD
}

// ModelCosts is a per-model breakdown kept in document order.
// Aggregation breaks ties by first appearance, so key order matters and a
// plain map cannot be used.
type ModelCosts []ModelCost

// UnmarshalJSON decodes a {"model": {"costUsd": n}} object preserving key order.
// A repeated key keeps its first position and takes the last value.
func (m *ModelCosts) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid byModel json")
	}

	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		*m = nil
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("byModel must be an object, got %s", res.Type)
	}

	out := make(ModelCosts, 0)
	index := make(map[string]int)
	res.ForEach(func(key, value gjson.Result) bool {
		entry := ModelCost{
			Name:    key.String(),
			CostUSD: optionalFloat(value.Get("costUsd")),
			Calls:   optionalInt(value.Get("calls")),
			Tokens:  optionalInt(value.Get("tokens")),
		}
		if i, ok := index[entry.Name]; ok {
			out[i] = entry
			return true
		}
		index[entry.Name] = len(out)
		out = append(out, entry)
		return true
	})

	*m = out
	return nil
}

func optionalFloat(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	v := r.Float()
	return &v
}

func optionalInt(r gjson.Result) *int64 {
	if r.Type != gjson.Number {
		return nil
	}
	v := r.Int()
	return &v
}

// ModelShare is a model's summed cost over a window.
type ModelShare struct {
	Model   string
	CostUSD float64
}
