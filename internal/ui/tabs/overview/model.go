// Package overview provides the cost overview tab: freshness and FX pills,
// the today/7d/30d cost cards and the daily cost chart.
package overview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/costboard/internal/app"
	"github.com/j-veylop/costboard/internal/models"
	"github.com/j-veylop/costboard/internal/ui/components"
)

// keyMap defines the key bindings specific to the overview tab.
type keyMap struct {
	PrevDay  key.Binding
	NextDay  key.Binding
	FirstDay key.Binding
	LastDay  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		FirstDay: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first day"),
		),
		LastDay: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "latest day"),
		),
	}
}

// Model represents the overview tab state.
type Model struct {
	state    *app.State
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int

	// cursor indexes the report's Daily points; -1 means no point.
	cursor int
}

// New creates a new overview model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		spinner:  components.NewSpinner("Loading documents..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
		cursor:   -1,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case app.ReportLoadedMsg:
		// Each pass starts at the most recent day.
		m.cursor = -1
		if msg.Report != nil {
			m.cursor = len(msg.Report.Daily) - 1
		}

	case tea.KeyMsg:
		if cmd := m.handleKeyMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	n := len(m.points())

	switch {
	case key.Matches(msg, m.keys.PrevDay):
		if n > 0 {
			m.cursor = max(m.cursor-1, 0)
		}
	case key.Matches(msg, m.keys.NextDay):
		if n > 0 {
			m.cursor = min(m.cursor+1, n-1)
		}
	case key.Matches(msg, m.keys.FirstDay):
		if n > 0 {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.LastDay):
		if n > 0 {
			m.cursor = n - 1
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	return nil
}

func (m *Model) points() []models.DailyPoint {
	if r := m.state.GetReport(); r != nil {
		return r.Daily
	}
	return nil
}

// SetSize sets the available size for the overview.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.PrevDay, m.keys.NextDay, m.keys.LastDay}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.PrevDay, m.keys.NextDay},
		{m.keys.FirstDay, m.keys.LastDay},
	}
}
