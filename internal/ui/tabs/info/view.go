package info

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/costboard/internal/ui/styles"
	"github.com/j-veylop/costboard/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderSourcesCard(),
		m.renderStatusCard(),
		m.renderAboutCard(),
	)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Document sources and build information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	return min(max(m.width-6, 50), 80)
}

func (m *Model) renderSourcesCard() string {
	src := m.sources()

	rows := []string{
		styles.CardTitleStyle.Render("Sources"),
		m.renderConfigRow("Usage document", orDash(src.Usage)),
		m.renderConfigRow("FX document", orDash(src.Fx)),
	}
	if src.Timeout > 0 {
		rows = append(rows, m.renderConfigRow("Fetch timeout", src.Timeout.String()))
	} else {
		rows = append(rows, m.renderConfigRow("Fetch timeout", "none"))
	}
	if m.config == nil && src.Usage == "" && src.Fx == "" {
		rows = append(rows, "", styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderStatusCard() string {
	rows := []string{
		styles.CardTitleStyle.Render("Status"),
		m.renderConfigRow("Passes", strconv.Itoa(m.state.PassCount())),
	}

	last := "never"
	if m.state.PassCount() > 0 {
		last = m.state.TimeSinceUpdate().Truncate(time.Second).String() + " ago"
	}
	rows = append(rows, m.renderConfigRow("Last pass", last))

	switch err := m.state.GetError(); {
	case err != nil:
		rows = append(rows, m.renderConfigRow("Result", styles.ErrorTextStyle.Render(err.Error())))
	case m.state.GetReport() != nil:
		r := m.state.GetReport()
		rows = append(rows,
			m.renderConfigRow("Result", styles.SuccessTextStyle.Render("ok")),
			m.renderConfigRow("Days", strconv.Itoa(r.DayCount)),
			m.renderConfigRow("Models charted", strconv.Itoa(len(r.Models))),
		)
	default:
		rows = append(rows, m.renderConfigRow("Result", styles.HelpStyle.Render("pending")))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderConfigRow renders a key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m *Model) renderAboutCard() string {
	rows := []string{
		styles.CardTitleStyle.Render("About costboard"),
		m.renderConfigRow("Version", version.GetVersion()),
		m.renderConfigRow("Build Date", version.GetDate()),
		m.renderConfigRow("Git Commit", version.GetCommit()),
		m.renderConfigRow("Go Version", runtime.Version()),
		m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
