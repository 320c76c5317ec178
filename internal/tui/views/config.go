package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/timers/internal/config"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// ConfigModel is the model for the config view
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	// UI state
	width     int
	height    int
	config    config.Config
	path      string
	exists    bool
	themeName string
	err       error

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themes:        themeProvider.AvailableThemes(),
		themeName:     themeProvider.CurrentName(),
	}
	m.resetThemeCursor()
	return m
}

// configLoadedMsg is sent when config is loaded
type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
	err    error
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig(nil)
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Theme):
			m.selectingTheme = true
			m.resetThemeCursor()
			return m, nil
		case key.Matches(msg, m.keys.Notifications):
			return m, m.setKey("notifications", strconv.FormatBool(!m.config.Notifications))
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadConfig(m.services.Config.Reload)
		}

	case configLoadedMsg:
		m.err = msg.err
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists
		m.themeName = m.themeProvider.CurrentName()
		m.resetThemeCursor()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		return m, m.loadConfig(nil)
	}

	return m, nil
}

// handleThemeSelection handles keys when theme selector is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}
	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		selected := m.themes[m.themeCursor]
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: selected}
		}
	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetThemeCursor()
	}
	return m, nil
}

// resetThemeCursor moves the selector cursor to the current theme.
func (m *ConfigModel) resetThemeCursor() {
	if i := m.themeProvider.IndexOf(m.themeName); i >= 0 {
		m.themeCursor = i
	}
	m.updateThemeOffset()
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// IsSelectingTheme returns true while the theme list is open
func (m ConfigModel) IsSelectingTheme() bool {
	return m.selectingTheme
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n")

	b.WriteString(renderStatLine(m.styles, "Config file:", m.path))
	if m.exists {
		b.WriteString(m.styles.StatLabel.Render("Status:") + m.styles.Success.Render("File exists") + "\n")
	} else {
		b.WriteString(m.styles.StatLabel.Render("Status:") + m.styles.Warning.Render("Using defaults (no config file)") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(divider(m.width))
	b.WriteString("\n")

	b.WriteString(renderStatLine(m.styles, "weekly_target:", orUnset(m.config.WeeklyTarget)))
	b.WriteString(renderStatLine(m.styles, "week_start_day:", m.config.WeekStartDay))
	b.WriteString(renderStatLine(m.styles, "timezone:", m.config.Timezone))
	b.WriteString(renderStatLine(m.styles, "storage_backend:", m.config.StorageBackend))
	b.WriteString(renderStatLine(m.styles, "export_dir:", orUnset(m.config.ExportDir)))
	b.WriteString(renderStatLine(m.styles, "notifications:", strconv.FormatBool(m.config.Notifications)))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
	} else {
		b.WriteString(renderStatLine(m.styles, "theme:", m.themeName))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("t change theme  n toggle notifications  r reload"))
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
	}

	return b.String()
}

// renderThemeSelector renders the theme selection list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(renderStatLine(m.styles, "theme:", "Select a theme"))
	b.WriteString("\n")

	end := m.themeOffset + maxVisibleThemes
	if end > len(m.themes) {
		end = len(m.themes)
	}

	if m.themeOffset > 0 {
		b.WriteString(m.styles.Muted.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < end; i++ {
		theme := m.themes[i]
		label := theme
		if theme == m.themeName {
			label += " (current)"
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.RowSelected.Render("▸ " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	if end < len(m.themes) {
		b.WriteString(m.styles.Muted.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadConfig runs before (when set) and reads the config service.
func (m ConfigModel) loadConfig(before func() error) tea.Cmd {
	return func() tea.Msg {
		var err error
		if before != nil {
			err = before()
		}
		return configLoadedMsg{
			config: m.services.Config.Get(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
			err:    err,
		}
	}
}

func (m ConfigModel) setKey(name, value string) tea.Cmd {
	return m.loadConfig(func() error {
		return m.services.Config.Set(name, value)
	})
}

func orUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
