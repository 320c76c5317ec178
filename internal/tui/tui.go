// Package tui provides the interactive browser of the timers application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/timers/internal/notify"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/tui/ui"
	"github.com/xolan/timers/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabTimers Tab = iota
	TabStats
	TabConfig
)

var tabNames = []string{"Timers", "Stats", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	timersView views.TimersModel
	statsView  views.StatsModel
	configView views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model. Notices of timer actions are also sent to notifier.
func New(services *service.Services, notifier notify.Notifier) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabTimers,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		timersView:    views.NewTimersModel(services, notifier, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timersView.Init(),
		m.statsView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A form or the theme list captures every key except its own
		capturing := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.refreshCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.refreshCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabTimers
			return m, m.refreshCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabStats
			return m, m.refreshCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabConfig
			return m, m.refreshCurrentView()
		}

		// Keys only reach the active view
		var cmd tea.Cmd
		switch m.activeTab {
		case TabTimers:
			m.timersView, cmd = m.timersView.Update(msg)
		case TabStats:
			m.statsView, cmd = m.statsView.Update(msg)
		case TabConfig:
			m.configView, cmd = m.configView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.timersView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		cmd := m.broadcast(ui.ThemeChangedMsg{ThemeName: newTheme, Styles: m.styles})
		return m, tea.Batch(cmd, m.saveThemeConfig(newTheme))
	}

	// Loads, ticks and form internals go to every view; each ignores what is not its own
	return m, m.broadcast(msg)
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds [3]tea.Cmd
	m.timersView, cmds[0] = m.timersView.Update(msg)
	m.statsView, cmds[1] = m.statsView.Update(msg)
	m.configView, cmds[2] = m.configView.Update(msg)
	return tea.Batch(cmds[:]...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabTimers:
		b.WriteString(m.timersView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("Tab", "next field"))
		parts = append(parts, m.renderKeyHelp("Enter", "confirm"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabTimers:
			parts = append(parts, m.renderKeyHelp("s", "start/stop"))
			parts = append(parts, m.renderKeyHelp("e", "edit"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("x", "export"))
		case TabStats:
			parts = append(parts, m.renderKeyHelp("←/→", "year"))
			parts = append(parts, m.renderKeyHelp("a", "all time"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
			parts = append(parts, m.renderKeyHelp("n", "notifications"))
		}

		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabTimers:
		return m.timersView.IsInputMode()
	case TabConfig:
		return m.configView.IsSelectingTheme()
	}
	return false
}

// refreshCurrentView reloads the data of the view switched to
func (m Model) refreshCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabTimers:
		return m.timersView.Reload()
	case TabStats:
		return m.statsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		_ = m.services.Config.Set("theme", themeName)
		return nil
	}
}

// renderHelpOverlay renders the key reference of the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n")

	help.WriteString(m.styles.StatusKey.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabTimers:
		help.WriteString(m.styles.StatusKey.Render("Timers:"))
		help.WriteString("\n")
		help.WriteString("  s/space    Start or stop the timer\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  g/G        First/last row\n")
		help.WriteString("  e          Edit timer\n")
		help.WriteString("  d          Delete timer\n")
		help.WriteString("  x          Export to JSON\n")
		help.WriteString("  r          Refresh\n")
	case TabStats:
		help.WriteString(m.styles.StatusKey.Render("Stats:"))
		help.WriteString("\n")
		help.WriteString("  ←/→        Newer/older year\n")
		help.WriteString("  a          All time\n")
		help.WriteString("  r          Refresh\n")
	case TabConfig:
		help.WriteString(m.styles.StatusKey.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  n          Toggle notifications\n")
		help.WriteString("  r          Reload config file\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Muted.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services, notifier notify.Notifier) error {
	p := tea.NewProgram(New(services, notifier), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
