// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Primary matches the daily chart line.
var (
	Primary = lipgloss.Color("#6aa3ff")
	Subtle  = lipgloss.Color("240")

	Success = lipgloss.Color("42")
	Error   = lipgloss.Color("196")
	Warning = lipgloss.Color("220")
	Info    = lipgloss.Color("39")

	BgDark   = lipgloss.Color("235")
	BgAccent = lipgloss.Color("236")
	BgLight  = lipgloss.Color("237")

	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")
)

// Frame and navigation.
var (
	// DocStyle is the outer frame of every tab.
	DocStyle = lipgloss.NewStyle().Margin(1, 2).Padding(0, 1)

	// ContentStyle frames root-level messages that replace a tab.
	ContentStyle = lipgloss.NewStyle().Padding(1, 2)

	TabBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Subtle)

	ActiveTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(Primary).Padding(0, 2)
	InactiveTabStyle = lipgloss.NewStyle().Foreground(TextMuted).Padding(0, 2)
)

// Cards.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1)
	CardTitleStyle = TitleStyle

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(1, 2).
			MarginBottom(1)

	// CostCardStyle is the fixed-width box of the today, 7 day and 30 day cards.
	CostCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 2).
			MarginRight(1)

	CostUSDStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	CostTWDStyle = lipgloss.NewStyle().Foreground(TextSecondary)

	// PillStyle renders the freshness and FX labels.
	PillStyle = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgAccent).
			Padding(0, 1).
			MarginRight(1)

	ErrorCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Padding(1, 2)
)

// Charts and legends.
var (
	ProgressLabelStyle    = lipgloss.NewStyle().Foreground(TextSecondary)
	SelectedListItemStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Background(BgAccent)
	TooltipStyle          = lipgloss.NewStyle().Foreground(TextPrimary).Background(BgLight).Padding(0, 1)
)

// Toasts. ToastStyle is the box; the Toast*Style values color its text.
var (
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginBottom(1)

	ToastSuccessStyle = lipgloss.NewStyle().Foreground(Success).Padding(0, 1)
	ToastErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(Error).Padding(0, 1)
	ToastWarningStyle = lipgloss.NewStyle().Foreground(Warning).Padding(0, 1)
	ToastInfoStyle    = lipgloss.NewStyle().Foreground(Info).Padding(0, 1)
)

// Help and plain text.
var (
	HelpStyle        = lipgloss.NewStyle().Foreground(TextMuted)
	HelpHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	HelpPanelStyle   = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(Primary).
				Padding(1, 3).
				Background(BgDark)

	ErrorTextStyle   = lipgloss.NewStyle().Foreground(Error)
	SuccessTextStyle = lipgloss.NewStyle().Foreground(Success)
)

// CenterBoth centers content both horizontally and vertically.
func CenterBoth(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
