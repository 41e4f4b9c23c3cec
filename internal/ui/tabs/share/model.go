// Package share provides the model share tab: a stacked share bar of the
// top models over the last 30 days with one animated row per model.
package share

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/costboard/internal/app"
	"github.com/j-veylop/costboard/internal/models"
	"github.com/j-veylop/costboard/internal/ui/components"
)

const (
	animationFrame    = 40 * time.Millisecond
	animationDuration = 1500 * time.Millisecond
)

type animationTickMsg time.Time

func animationTickCmd() tea.Cmd {
	return tea.Tick(animationFrame, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// keyMap defines the key bindings specific to the models tab.
type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next model"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev model"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first model"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last model"),
		),
	}
}

// AnimationState tracks one bar easing towards its share.
type AnimationState struct {
	StartTime      time.Time
	CurrentPercent float64
	TargetPercent  float64
	StartPercent   float64
}

// Model represents the models tab state.
type Model struct {
	state      *app.State
	animations map[string]*AnimationState
	bars       []components.ShareBar
	keys       keyMap
	viewport   viewport.Model
	width      int
	height     int
	selected   int
}

// New creates a new models tab.
func New(state *app.State) *Model {
	return &Model{
		state:      state,
		animations: make(map[string]*AnimationState),
		keys:       defaultKeyMap(),
		viewport:   viewport.New(0, 0),
	}
}

// Init initializes the models tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the models tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case app.ReportLoadedMsg:
		m.syncSlices(msg.Report, time.Now())
		cmds = append(cmds, animationTickCmd())

	case animationTickMsg:
		if m.stepAnimations(time.Time(msg)) {
			cmds = append(cmds, animationTickCmd())
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))
	}

	return m, tea.Batch(cmds...)
}

// syncSlices rebuilds the bars for a new pass and retargets the animations.
// Bars of models that dropped out of the chart are forgotten.
func (m *Model) syncSlices(r *models.Report, now time.Time) {
	var slices []models.ModelSlice
	if r != nil {
		slices = r.Models
	}

	m.bars = make([]components.ShareBar, len(slices))
	seen := make(map[string]bool, len(slices))
	for i, s := range slices {
		m.bars[i] = components.NewShareBar(s.Color)
		seen[s.Model] = true
		m.updateAnimationState(s.Model, s.Percent, now)
	}
	for name := range m.animations {
		if !seen[name] {
			delete(m.animations, name)
		}
	}

	if m.selected >= len(slices) {
		m.selected = max(len(slices)-1, 0)
	}
}

func (m *Model) updateAnimationState(name string, target float64, now time.Time) {
	state, exists := m.animations[name]
	if !exists {
		state = &AnimationState{StartTime: now}
		m.animations[name] = state
	}

	if target != state.TargetPercent {
		state.StartPercent = state.CurrentPercent
		state.TargetPercent = target
		state.StartTime = now
	}
}

// stepAnimations advances every bar and reports whether any is still moving.
func (m *Model) stepAnimations(now time.Time) bool {
	animating := false
	for _, state := range m.animations {
		if state.CurrentPercent == state.TargetPercent {
			continue
		}
		elapsed := now.Sub(state.StartTime)
		if elapsed >= animationDuration {
			state.CurrentPercent = state.TargetPercent
			continue
		}
		progress := elapsed.Seconds() / animationDuration.Seconds()
		ease := 1.0 - (1.0-progress)*(1.0-progress)
		state.CurrentPercent = state.StartPercent + (state.TargetPercent-state.StartPercent)*ease
		animating = true
	}
	return animating
}

// displayPercent is the animated share of a model.
func (m *Model) displayPercent(s models.ModelSlice) float64 {
	if state, ok := m.animations[s.Model]; ok {
		return state.CurrentPercent
	}
	return s.Percent
}

func (m *Model) slices() []models.ModelSlice {
	if r := m.state.GetReport(); r != nil {
		return r.Models
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	n := len(m.slices())

	switch {
	case key.Matches(msg, m.keys.Next):
		if n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case key.Matches(msg, m.keys.Prev):
		if n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
	case key.Matches(msg, m.keys.First):
		m.selected = 0
	case key.Matches(msg, m.keys.Last):
		if n > 0 {
			m.selected = n - 1
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	return nil
}

// SetSize sets the available size for the models tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Next, m.keys.Prev}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Next, m.keys.Prev},
		{m.keys.First, m.keys.Last},
	}
}
