// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/costboard/internal/currency"
	"github.com/j-veylop/costboard/internal/models"
	"github.com/j-veylop/costboard/internal/ui/styles"
)

// CursorMarker points at the selected day under the line chart.
const CursorMarker = "▲"

// RenderLineChart plots one value per day and draws a marker under the point
// at cursor. A negative cursor draws no marker.
func RenderLineChart(data []float64, width, height, cursor int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	step := pointStep(len(data), width)
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.LowerBound(0),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Blue),
	}
	if len(data) > 1 {
		opts = append(opts, asciigraph.Width((len(data)-1)*step+1))
	}

	graph := asciigraph.Plot(data, opts...)

	var b strings.Builder
	b.WriteString(graph)
	if cursor >= 0 && cursor < len(data) {
		if col := axisColumn(graph); col >= 0 {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", col+cursor*step))
			b.WriteString(lipgloss.NewStyle().Foreground(styles.Primary).Render(CursorMarker))
		}
	}
	if caption != "" {
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render(caption))
	}
	return b.String()
}

// AxisCaption summarizes the y range of a daily series with axis tick labels.
func AxisCaption(data []float64) string {
	if len(data) == 0 {
		return ""
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return fmt.Sprintf("USD per day · low%s · high%s", currency.FormatAxis(lo), currency.FormatAxis(hi))
}

// pointStep returns how many columns each day gets so the chart fills width.
func pointStep(points, width int) int {
	if points < 2 {
		return 1
	}
	step := (width - 1) / (points - 1)
	if step < 1 {
		return 1
	}
	return step
}

// axisColumn finds the column of the y axis in a rendered plot, or -1.
func axisColumn(graph string) int {
	for _, line := range strings.Split(graph, "\n") {
		col := 0
		for _, r := range ansi.Strip(line) {
			if r == '┤' || r == '┼' {
				return col
			}
			col++
		}
	}
	return -1
}

// RenderShareChart draws one stacked bar where each slice takes a width
// proportional to its percentage.
func RenderShareChart(slices []models.ModelSlice, width int) string {
	if len(slices) == 0 {
		return styles.HelpStyle.Render("No model data")
	}
	if width < 10 {
		width = 10
	}

	total := 0.0
	for _, s := range slices {
		total += s.Percent
	}
	if total <= 0 {
		return styles.HelpStyle.Render(strings.Repeat("░", width))
	}

	var b strings.Builder
	used := 0
	for i, s := range slices {
		cells := int(math.Round(s.Percent / 100 * float64(width)))
		if i == len(slices)-1 {
			cells = width - used
		}
		if cells < 0 {
			cells = 0
		}
		if used+cells > width {
			cells = width - used
		}
		used += cells
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(strings.Repeat("█", cells)))
	}
	return b.String()
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}

// LegendFromSlices builds legend entries labelled with each slice's model.
func LegendFromSlices(slices []models.ModelSlice) []LegendItem {
	items := make([]LegendItem, len(slices))
	for i, s := range slices {
		items[i] = LegendItem{Label: s.Model, Color: lipgloss.Color(s.Color)}
	}
	return items
}
