// Package app implements the main Bubble Tea application with tab-based navigation.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/costboard/internal/ui/components"
	"github.com/j-veylop/costboard/internal/ui/styles"
)

// TabID represents the identifier for a tab in the application.
type TabID int

const (
	// TabOverview shows the cost cards and the daily chart.
	TabOverview TabID = iota
	// TabModels shows the per-model share chart.
	TabModels
	// TabInfo is the ID for the info tab.
	TabInfo
)

// String returns the string representation of the TabID.
func (t TabID) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabModels:
		return "Models"
	case TabInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// ParseTabID maps a tab name such as "models" to its ID.
func ParseTabID(name string) (TabID, bool) {
	for id := TabOverview; id <= TabInfo; id++ {
		if strings.EqualFold(name, id.String()) {
			return id, true
		}
	}
	return TabOverview, false
}

// Tab defines the interface that all tabs must implement.
type Tab interface {
	// Init initializes the tab and returns any initial commands.
	Init() tea.Cmd

	// Update handles messages and returns the updated tab and any commands.
	Update(msg tea.Msg) (Tab, tea.Cmd)

	// View renders the tab content.
	View() string

	// SetSize sets the available size for the tab.
	SetSize(width, height int)

	// ShortHelp returns key bindings for the short help view.
	ShortHelp() []key.Binding

	// FullHelp returns key bindings for the full help view.
	FullHelp() [][]key.Binding
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
}

// DefaultKeyMap returns the default keybindings. Arrow keys are left to the
// tabs, which use them to move chart cursors.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
		Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "models")),
		Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "info")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3},
		{k.NextTab, k.PrevTab},
		{k.Refresh, k.Help, k.Quit},
	}
}

// Styles groups the styles the root model draws with.
type Styles struct {
	TabBar      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	Toast        lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style

	Content lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the root styles from the shared theme.
func DefaultStyles() Styles {
	return Styles{
		TabBar:       styles.TabBarStyle,
		ActiveTab:    styles.ActiveTabStyle,
		InactiveTab:  styles.InactiveTabStyle,
		Toast:        styles.ToastStyle,
		ToastSuccess: styles.ToastSuccessStyle,
		ToastError:   styles.ToastErrorStyle,
		ToastWarning: styles.ToastWarningStyle,
		ToastInfo:    styles.ToastInfoStyle,
		Content:      styles.ContentStyle,
		Heading:      styles.HelpHeadingStyle,
		Muted:        styles.HelpStyle,
	}
}

// Model is the main application model.
type Model struct {
	state     *State
	refresher Refresher
	styles    Styles

	tabNames []string
	tabs     []Tab
	keymap   KeyMap
	spinner  components.LoadingSpinner
	changes  <-chan struct{}

	activeTab TabID
	width     int
	height    int

	showHelp bool
	ready    bool
}

// NewModel initializes a new application model. A nil refresher yields a
// model that never loads, which is useful in tests.
func NewModel(r Refresher) *Model {
	return &Model{
		activeTab: TabOverview,
		tabNames:  []string{TabOverview.String(), TabModels.String(), TabInfo.String()},
		tabs:      make([]Tab, 3),
		state:     NewState(),
		refresher: r,
		keymap:    DefaultKeyMap(),
		styles:    DefaultStyles(),
		spinner:   components.NewSpinner("Loading..."),
	}
}

// SetTabs sets the tabs for the model.
func (m *Model) SetTabs(tabs []Tab) {
	m.tabs = tabs
	if m.width > 0 && m.height > 0 {
		m.updateTabSizes()
	}
}

// SetWatch makes the model reload whenever changes delivers a value.
func (m *Model) SetWatch(changes <-chan struct{}) {
	m.changes = changes
}

// GetState returns the application state.
func (m *Model) GetState() *State {
	return m.state
}

// SetActiveTab selects the tab shown first.
func (m *Model) SetActiveTab(id TabID) {
	m.switchTab(id)
}

// Init starts the first render pass.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick(),
		tickCmd(),
	}

	if m.refresher != nil {
		m.state.SetLoadingNotification("Loading documents...")
		cmds = append(cmds, loadReportCmd(m.refresher))
	}

	if m.changes != nil {
		cmds = append(cmds, waitForChangeCmd(m.changes))
	}

	for _, tab := range m.tabs {
		if tab != nil {
			cmds = append(cmds, tab.Init())
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateTabSizes()

	case tea.KeyMsg:
		if cmd, handled := m.handleKeyMsg(msg); handled {
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ReportLoadedMsg:
		cmds = append(cmds, m.handleReportLoaded(msg)...)
		// Every tab sees a new pass, not only the visible one.
		cmds = append(cmds, m.updateAllTabs(msg)...)
		return m, tea.Batch(cmds...)

	default:
		cmds = append(cmds, m.handleAppMsg(msg)...)
	}

	if cmd := m.updateActiveTab(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleAppMsg(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case TickMsg:
		m.state.ClearExpiredNotifications()
		cmds = append(cmds, tickCmd())
	case AddNotificationMsg:
		id := m.state.AddNotification(msg.Type, msg.Message, msg.Duration)
		if msg.Duration > 0 {
			cmds = append(cmds, clearNotificationCmd(id, msg.Duration))
		}
	case RemoveNotificationMsg:
		m.state.RemoveNotification(msg.ID)
	case RefreshMsg:
		cmds = append(cmds, m.startRefresh())
	case SourceChangedMsg:
		if cmd := m.startRefresh(); cmd != nil {
			cmds = append(cmds, notifyInfoCmd("Source changed, reloading"), cmd)
		}
		if m.changes != nil {
			cmds = append(cmds, waitForChangeCmd(m.changes))
		}
	}
	return cmds
}

func (m *Model) handleReportLoaded(msg ReportLoadedMsg) []tea.Cmd {
	first := m.state.IsInitialLoading()

	m.state.SetLoading("initial", false)
	m.state.SetLoading("report", false)
	m.state.ClearLoadingNotification()

	if msg.Error != nil {
		m.state.SetError(msg.Error)
		return []tea.Cmd{notifyErrorCmd(msg.Error.Error())}
	}

	m.state.SetReport(msg.Report)
	if !msg.Report.HasData() {
		return []tea.Cmd{notifyWarningCmd("Usage document has no days")}
	}
	if first {
		return nil
	}
	return []tea.Cmd{notifySuccessCmd("Data reloaded")}
}

// startRefresh begins a new pass unless one is already running.
func (m *Model) startRefresh() tea.Cmd {
	if m.state.AnyLoading() {
		return nil
	}
	if m.refresher == nil {
		return nil
	}
	m.state.SetLoading("report", true)
	m.state.SetLoadingNotification("Reloading...")
	return loadReportCmd(m.refresher)
}

func (m *Model) switchTab(id TabID) {
	if int(id) < 0 || int(id) >= len(m.tabs) {
		return
	}
	m.activeTab = id
	m.updateTabSizes()
}

func (m *Model) updateActiveTab(msg tea.Msg) tea.Cmd {
	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		var cmd tea.Cmd
		m.tabs[m.activeTab], cmd = m.tabs[m.activeTab].Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) updateAllTabs(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for i, tab := range m.tabs {
		if tab == nil {
			continue
		}
		var cmd tea.Cmd
		m.tabs[i], cmd = tab.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) updateTabSizes() {
	contentHeight := max(0, m.height-5)

	for _, tab := range m.tabs {
		if tab != nil {
			tab.SetSize(m.width, contentHeight)
		}
	}
}

// handleKeyMsg handles global keys. It reports whether the key was consumed;
// anything else is passed on to the active tab.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return nil, true

	case key.Matches(msg, m.keymap.Escape):
		if m.showHelp {
			m.showHelp = false
			return nil, true
		}

	case key.Matches(msg, m.keymap.Tab1):
		m.switchTab(TabOverview)
		return nil, true

	case key.Matches(msg, m.keymap.Tab2):
		m.switchTab(TabModels)
		return nil, true

	case key.Matches(msg, m.keymap.Tab3):
		m.switchTab(TabInfo)
		return nil, true

	case key.Matches(msg, m.keymap.NextTab):
		if !m.showHelp && len(m.tabs) > 0 {
			m.switchTab(TabID((int(m.activeTab) + 1) % len(m.tabs)))
		}
		return nil, true

	case key.Matches(msg, m.keymap.PrevTab):
		if !m.showHelp && len(m.tabs) > 0 {
			m.switchTab(TabID((int(m.activeTab) - 1 + len(m.tabs)) % len(m.tabs)))
		}
		return nil, true

	case key.Matches(msg, m.keymap.Refresh):
		return m.startRefresh(), true
	}

	return nil, m.showHelp
}

// View renders the application UI.
func (m *Model) View() string {
	var b strings.Builder

	if m.width > 0 {
		b.WriteString(m.renderNavbar())
		b.WriteString("\n")
	}

	switch {
	case !m.ready:
		b.WriteString(m.styles.Content.Render(m.spinner.View()))
		return b.String()
	case m.activeTab != TabInfo && m.state.GetError() != nil:
		b.WriteString(m.renderErrorCard(m.state.GetError()))
	case int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil:
		b.WriteString(m.tabs[m.activeTab].View())
	default:
		b.WriteString(m.renderPlaceholder())
	}

	mainView := b.String()

	if m.showHelp {
		mainView = m.overlayCentered(mainView, m.renderHelp())
	}

	if notifications := m.renderNotifications(); len(notifications) > 0 {
		return m.overlayToasts(mainView, notifications)
	}

	return mainView
}

// renderErrorCard is the visible state of a failed pass.
func (m *Model) renderErrorCard(err error) string {
	width := min(max(m.width-6, 40), 100)
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ErrorTextStyle.Bold(true).Render("Could not load dashboard data"),
		"",
		lipgloss.NewStyle().Width(width-6).Render(err.Error()),
		"",
		m.styles.Muted.Render("Press r to try again."),
	)
	return m.styles.Content.Render(styles.ErrorCardStyle.Width(width).Render(body))
}

func (m *Model) overlayCentered(mainView string, overlay string) string {
	mainLines := strings.Split(mainView, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayHeight := len(overlayLines)
	overlayWidth := lipgloss.Width(overlay)

	y := max((m.height-overlayHeight)/2, 0)
	x := max((m.width-overlayWidth)/2, 0)

	for len(mainLines) < y+overlayHeight {
		mainLines = append(mainLines, "")
	}

	for i, overlayLine := range overlayLines {
		mainY := y + i
		mainLine := mainLines[mainY]

		left := ansi.Truncate(mainLine, x, "")
		right := ansi.TruncateLeft(mainLine, x+overlayWidth, "")

		if w := lipgloss.Width(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		mainLines[mainY] = left + overlayLine + right
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderNavbar() string {
	var tabs []string

	for i, name := range m.tabNames {
		if TabID(i) == m.activeTab {
			tabs = append(tabs, m.styles.ActiveTab.Render(fmt.Sprintf("[%d] %s", i+1, name)))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(fmt.Sprintf(" %d  %s", i+1, name)))
		}
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return m.styles.TabBar.Width(m.width).Render(tabBar)
}

func (m *Model) renderNotifications() []string {
	notifications := m.state.GetNotifications()
	if len(notifications) == 0 {
		return nil
	}

	toasts := make([]string, 0, len(notifications))
	for _, n := range notifications {
		var style lipgloss.Style
		var prefix string

		switch n.Type {
		case NotificationSuccess:
			style = m.styles.ToastSuccess
			prefix = "[OK]"
		case NotificationError:
			style = m.styles.ToastError
			prefix = "[ERR]"
		case NotificationWarning:
			style = m.styles.ToastWarning
			prefix = "[WARN]"
		case NotificationInfo:
			style = m.styles.ToastInfo
			prefix = "[INFO]"
		case NotificationLoading:
			style = m.styles.ToastInfo
			prefix = m.spinner.Frame()
		}

		message := n.Message
		if maxWidth := m.width / 2; maxWidth > 10 {
			message = ansi.Truncate(message, maxWidth, "…")
		}

		content := style.Render(fmt.Sprintf("%s %s", prefix, message))
		toasts = append(toasts, m.styles.Toast.Render(content))
	}

	return toasts
}

func (m *Model) overlayToasts(mainView string, toasts []string) string {
	toastStack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	toastLines := strings.Split(toastStack, "\n")
	mainLines := strings.Split(mainView, "\n")

	toastWidth := lipgloss.Width(toastStack)
	startX := max(m.width-toastWidth-2, 0)

	startY := 2

	for i, toastLine := range toastLines {
		lineIdx := startY + i
		if lineIdx >= len(mainLines) {
			break
		}

		mainLine := mainLines[lineIdx]
		mainLineWidth := lipgloss.Width(mainLine)

		if mainLineWidth < startX {
			mainLines[lineIdx] = mainLine + strings.Repeat(" ", startX-mainLineWidth) + toastLine
		} else {
			mainLines[lineIdx] = ansi.Truncate(mainLine, startX, "") + toastLine
		}
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderHelp() string {
	var lines []string

	lines = append(lines, m.styles.Heading.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	lines = append(lines, m.styles.Heading.Render("Navigation"))
	lines = append(lines, "  1-3        Switch tabs")
	lines = append(lines, "  Tab        Next tab")
	lines = append(lines, "  Shift+Tab  Previous tab")
	lines = append(lines, "")

	lines = append(lines, m.styles.Heading.Render("Actions"))
	lines = append(lines, "  r          Reload documents")
	lines = append(lines, "  ?          Toggle help")
	lines = append(lines, "  q/Ctrl+C   Quit")
	lines = append(lines, "")

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		if tabHelp := m.tabs[m.activeTab].ShortHelp(); len(tabHelp) > 0 {
			lines = append(lines, m.styles.Heading.Render(fmt.Sprintf("%s Tab", m.tabNames[m.activeTab])))
			for _, binding := range tabHelp {
				lines = append(lines, fmt.Sprintf("  %-10s %s", binding.Help().Key, binding.Help().Desc))
			}
			lines = append(lines, "")
		}
	}

	lines = append(lines, m.styles.Muted.Render("Press ? or Esc to close"))

	return styles.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPlaceholder() string {
	content := fmt.Sprintf(
		"Tab %d: %s\n\n%s",
		m.activeTab+1,
		m.activeTab,
		m.styles.Muted.Render("This tab is not available."),
	)
	return m.styles.Content.Render(content)
}
