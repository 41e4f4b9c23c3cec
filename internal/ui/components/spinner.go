package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/costboard/internal/ui/styles"
)

var captionStyle = lipgloss.NewStyle().Foreground(styles.TextSecondary)

// LoadingSpinner is the one spinner used across the UI. The root model shows
// its bare Frame in the loading toast; tabs show the captioned View while the
// first pass is running.
type LoadingSpinner struct {
	model   spinner.Model
	caption string
}

// NewSpinner creates a spinner with a caption, which may be empty.
func NewSpinner(caption string) LoadingSpinner {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return LoadingSpinner{model: s, caption: caption}
}

// Tick starts the animation.
func (l LoadingSpinner) Tick() tea.Cmd {
	return l.model.Tick
}

// Update advances the animation. Ticks addressed to other spinners are ignored.
func (l LoadingSpinner) Update(msg tea.Msg) (LoadingSpinner, tea.Cmd) {
	var cmd tea.Cmd
	l.model, cmd = l.model.Update(msg)
	return l, cmd
}

// Frame renders the current animation frame alone.
func (l LoadingSpinner) Frame() string {
	return l.model.View()
}

// View renders the frame followed by the caption.
func (l LoadingSpinner) View() string {
	if l.caption == "" {
		return l.Frame()
	}
	return l.Frame() + " " + captionStyle.Render(l.caption)
}

// Centered renders View in the middle of a width x height box.
func (l LoadingSpinner) Centered(width, height int) string {
	return styles.CenterBoth(l.View(), width, height)
}
