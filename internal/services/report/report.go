// Package report turns the loaded documents into the values shown on screen.
package report

import (
	"fmt"
	"strings"

	"github.com/j-veylop/costboard/internal/currency"
	"github.com/j-veylop/costboard/internal/models"
	"github.com/j-veylop/costboard/internal/services/aggregate"
)

// MaxModelSlices is the number of models kept in the share chart.
const MaxModelSlices = 8

// Palette holds the share chart colors, assigned to slices in rank order.
var Palette = []string{
	"#6aa3ff",
	"#8b5cf6",
	"#22c55e",
	"#f97316",
	"#ef4444",
	"#14b8a6",
	"#eab308",
	"#64748b",
}

// Card titles.
const (
	TitleToday = "Today"
	TitleWeek  = "Last 7 days"
	TitleMonth = "Last 30 days"
)

// Build runs the aggregation and formatting steps of a render pass. Either
// document may be nil; missing fields degrade to placeholders.
func Build(usage *models.UsageSeries, fx *models.FxQuote) *models.Report {
	days := usage.Records()
	rate := fx.Rate()

	week := aggregate.WindowLastN(days, aggregate.WeekDays)
	month := aggregate.WindowLastN(days, aggregate.MonthDays)

	r := &models.Report{
		Freshness: FreshnessLabel(usage),
		FxLabel:   FxLabel(fx),
		DayCount:  len(days),
	}

	var todayCost *float64
	var todayDetail string
	if latest := usage.Latest(); latest != nil {
		todayCost = latest.Cost()
		todayDetail = usageDetail([]models.DailyRecord{*latest})
	}
	r.Today = card(TitleToday, todayCost, rate, todayDetail)

	weekCost := aggregate.SumCost(week)
	r.Week = card(TitleWeek, &weekCost, rate, usageDetail(week))

	monthCost := aggregate.SumCost(month)
	r.Month = card(TitleMonth, &monthCost, rate, usageDetail(month))

	labels, values := aggregate.DailySeries(days)
	r.Daily = make([]models.DailyPoint, len(values))
	for i := range values {
		r.Daily[i] = models.DailyPoint{
			Date:    labels[i],
			CostUSD: values[i],
			Tooltip: currency.USD(values[i]),
		}
	}

	r.Models = Slices(aggregate.TopN(aggregate.AggregateByModel(month), MaxModelSlices))

	return r
}

// Slices converts ranked model shares into chart slices with tooltip, color
// and percentage of the charted total.
func Slices(shares []models.ModelShare) []models.ModelSlice {
	total := 0.0
	for _, s := range shares {
		total += s.CostUSD
	}

	slices := make([]models.ModelSlice, len(shares))
	for i, s := range shares {
		pct := 0.0
		if total > 0 {
			pct = s.CostUSD / total * 100
		}
		slices[i] = models.ModelSlice{
			Model:   s.Model,
			CostUSD: s.CostUSD,
			Tooltip: s.Model + ": " + currency.USD(s.CostUSD),
			Color:   Palette[i%len(Palette)],
			Percent: pct,
		}
	}
	return slices
}

// FreshnessLabel renders "資料更新：<asOf>".
func FreshnessLabel(usage *models.UsageSeries) string {
	return "資料更新：" + usage.AsOfOr(currency.Placeholder)
}

// FxLabel renders the FX pill. A missing or zero rate shows "FX: —".
func FxLabel(fx *models.FxQuote) string {
	rate := fx.Rate()
	if rate == nil || *rate == 0 {
		return "FX: " + currency.Placeholder
	}
	return fmt.Sprintf("FX(%s): %s｜%s",
		fx.LabelOr(models.DefaultFxLabel),
		currency.FormatRate(*rate),
		fx.QuotedAtOr(""))
}

func card(title string, usd, rate *float64, detail string) models.CostCard {
	return models.CostCard{
		Title:  title,
		USD:    currency.FormatUSD(usd),
		TWD:    currency.FormatTWD(usd, rate),
		Detail: detail,
	}
}

// usageDetail sums the optional call and token counts. It returns "" when
// no record carries either.
func usageDetail(records []models.DailyRecord) string {
	var calls, tokens int64
	var hasCalls, hasTokens bool

	for i := range records {
		t := records[i].Total
		if t == nil {
			continue
		}
		if t.Calls != nil {
			calls += *t.Calls
			hasCalls = true
		}
		if t.Tokens != nil {
			tokens += *t.Tokens
			hasTokens = true
		}
	}

	var parts []string
	if hasCalls {
		parts = append(parts, fmt.Sprintf("%s calls", formatCount(calls)))
	}
	if hasTokens {
		parts = append(parts, fmt.Sprintf("%s tokens", formatCount(tokens)))
	}
	return strings.Join(parts, " · ")
}

// formatCount abbreviates large counts, e.g. 1234567 -> "1.2M".
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n >= 10_000:
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	default:
		return fmt.Sprintf("%d", n)
	}
}
