package share

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/costboard/internal/ui/components"
	"github.com/j-veylop/costboard/internal/ui/styles"
)

// View renders the models tab.
func (m *Model) View() string {
	slices := m.slices()

	var rows []string
	rows = append(rows,
		styles.TitleStyle.Render("Model share"),
		styles.HelpStyle.Render(fmt.Sprintf("Top %d models by cost, last 30 days", len(slices))),
		"",
	)

	width := max(m.width-10, 40)

	if len(slices) == 0 || len(m.bars) != len(slices) {
		rows = append(rows, styles.HelpStyle.Render("No model data"))
	} else {
		rows = append(rows,
			components.RenderShareChart(slices, width),
			components.RenderLegend(components.LegendFromSlices(slices)),
			"",
		)

		labelWidth := 0
		for _, s := range slices {
			labelWidth = max(labelWidth, lipgloss.Width(s.Model))
		}
		labelWidth = min(labelWidth, 32)

		for i, s := range slices {
			shown := s
			shown.Percent = m.displayPercent(s)
			rows = append(rows, m.bars[i].View(shown, labelWidth, width, i == m.selected))
		}

		if m.selected >= 0 && m.selected < len(slices) {
			rows = append(rows, "", styles.TooltipStyle.Render(slices[m.selected].Tooltip))
		}
	}

	content := styles.CardStyle.Width(width + 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}
