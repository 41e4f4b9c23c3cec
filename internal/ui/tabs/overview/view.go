package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/costboard/internal/models"
	"github.com/j-veylop/costboard/internal/ui/components"
	"github.com/j-veylop/costboard/internal/ui/styles"
)

const (
	cardWidth   = 26
	chartHeight = 10
)

// View renders the overview tab.
func (m *Model) View() string {
	report := m.state.GetReport()
	if report == nil {
		if m.state.IsInitialLoading() {
			return m.spinner.Centered(m.width, m.height)
		}
		return m.renderEmpty()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(report),
		m.renderCards(report),
		m.renderChart(report),
	)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Overview"),
		styles.HelpStyle.Render("Nothing loaded yet. Press r to load the documents."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader(r *models.Report) string {
	title := styles.TitleStyle.Render("API cost")
	pills := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.PillStyle.Render(r.Freshness),
		styles.PillStyle.Render(r.FxLabel),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, pills, "")
}

func (m *Model) renderCards(r *models.Report) string {
	cards := make([]string, 0, 3)
	for _, c := range r.Cards() {
		cards = append(cards, renderCard(c))
	}

	// Three cards side by side need roughly 3*(width+border+margin) columns.
	if m.width > 0 && m.width < 3*(cardWidth+5)+6 {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(c models.CostCard) string {
	rows := []string{
		styles.CardTitleStyle.MarginBottom(0).Render(c.Title),
		styles.CostUSDStyle.Render(c.USD),
		styles.CostTWDStyle.Render(c.TWD),
	}
	if c.Detail != "" {
		rows = append(rows, styles.HelpStyle.Render(c.Detail))
	}
	return styles.CostCardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderChart(r *models.Report) string {
	width := max(m.width-6, 40)
	chartWidth := max(width-16, 30)

	values := r.DailyValues()
	var rows []string
	rows = append(rows,
		styles.CardTitleStyle.Render(fmt.Sprintf("Daily cost (%d days)", len(values))),
	)

	chart := components.RenderLineChart(values, chartWidth, chartHeight, m.cursor, components.AxisCaption(values))
	for line := range strings.SplitSeq(chart, "\n") {
		rows = append(rows, "  "+line)
	}

	if tip := m.tooltip(r); tip != "" {
		rows = append(rows, "", "  "+styles.TooltipStyle.Render(tip))
	}

	return styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// tooltip describes the point under the cursor.
func (m *Model) tooltip(r *models.Report) string {
	if m.cursor < 0 || m.cursor >= len(r.Daily) {
		return ""
	}
	p := r.Daily[m.cursor]
	return p.Date + "  " + p.Tooltip
}
