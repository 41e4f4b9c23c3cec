package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/costboard/internal/models"
	"github.com/j-veylop/costboard/internal/ui/styles"
)

// ShareBar renders one legend row of the model share chart: the slice
// tooltip, a bar in the slice color and the share percentage.
type ShareBar struct {
	progress progress.Model
	color    string
}

// NewShareBar creates a bar filled with a single slice color.
func NewShareBar(color string) ShareBar {
	p := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)
	p.EmptyColor = string(styles.BgLight)

	return ShareBar{progress: p, color: color}
}

// Color returns the fill color.
func (s ShareBar) Color() string {
	return s.color
}

// View renders the row at the given total width. labelWidth aligns the bars
// of several rows.
func (s ShareBar) View(slice models.ModelSlice, labelWidth, width int, selected bool) string {
	barWidth := width - labelWidth - 12
	if barWidth < 10 {
		barWidth = 10
	}
	s.progress.Width = barWidth

	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.color)).Render("■")

	labelStyle := styles.ProgressLabelStyle
	if selected {
		labelStyle = styles.SelectedListItemStyle
	}
	label := labelStyle.Width(labelWidth).Render(slice.Model)

	percent := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(8).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.1f%%", slice.Percent))

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		swatch,
		" ",
		label,
		" ",
		s.progress.ViewAs(slice.Percent/100),
		percent,
	)
}
