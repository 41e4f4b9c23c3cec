package models

// CostCard is one of the today/7d/30d cost cards.
type CostCard struct {
	Title string
	USD   string
	TWD   string
	// Detail carries optional producer figures such as call and token counts.
	Detail string
}

// DailyPoint is one point of the daily cost line chart.
type DailyPoint struct {
	Date    string
	Tooltip string
	CostUSD float64
}

// ModelSlice is one slice of the model share chart.
type ModelSlice struct {
	Model   string
	Tooltip string
	Color   string
	CostUSD float64
	Percent float64
}

// Report holds every value produced by a single render pass. It is rebuilt
// from scratch on each load and never mutated afterwards.
type Report struct {
	Freshness string
	FxLabel   string
	Today     CostCard
	Week      CostCard
	Month     CostCard
	Daily     []DailyPoint
	Models    []ModelSlice
	DayCount  int
}

// Cards returns the cost cards in display order.
func (r *Report) Cards() []CostCard {
	if r == nil {
		return nil
	}
	return []CostCard{r.Today, r.Week, r.Month}
}

// DailyValues returns the line chart values in day order.
func (r *Report) DailyValues() []float64 {
	if r == nil {
		return nil
	}
	values := make([]float64, len(r.Daily))
	for i, p := range r.Daily {
		values[i] = p.CostUSD
	}
	return values
}

// HasData reports whether the usage document contained any days.
func (r *Report) HasData() bool {
	return r != nil && r.DayCount > 0
}
