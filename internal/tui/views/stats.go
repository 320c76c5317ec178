package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/stats"
	"github.com/xolan/timers/internal/timer"
	"github.com/xolan/timers/internal/tui/ui"
)

// allTime selects the statistics across every year.
const allTime = -1

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width    int
	height   int
	loading  bool
	err      error
	perYear  []*service.StatsResult
	overall  *service.StatsResult
	selected int // index into perYear, or allTime
	target   bool
	chart    barchart.Model
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		loading:  true,
		chart:    barchart.New(60, 10),
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	perYear []*service.StatsResult
	overall *service.StatsResult
	err     error
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.selected == allTime {
				m.selected = 0
			} else if m.selected > 0 {
				m.selected--
			}
			m.drawChart()
		case key.Matches(msg, m.keys.Right):
			if m.selected != allTime && m.selected < len(m.perYear)-1 {
				m.selected++
			}
			m.drawChart()
		case key.Matches(msg, m.keys.AllYears):
			if m.selected == allTime {
				m.selected = 0
			} else {
				m.selected = allTime
			}
			m.drawChart()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.perYear = msg.perYear
			m.overall = msg.overall
			if m.selected >= len(m.perYear) {
				m.selected = 0
			}
			_, m.target = m.services.Config.Get().WeeklyTargetHours()
			m.drawChart()
		}

	case ui.TimersChangedMsg:
		return m, m.loadStats()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.drawChart()
		return m, nil
	}

	return m, nil
}

// Current returns the statistics on display, or nil before any timer exists.
func (m StatsModel) Current() *service.StatsResult {
	if m.selected == allTime {
		return m.overall
	}
	if m.selected < 0 || m.selected >= len(m.perYear) {
		return nil
	}
	return m.perYear[m.selected]
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	result := m.Current()
	if result == nil {
		b.WriteString(m.styles.ViewTitle.Render("Stats"))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(EmptyMessage))
		return b.String()
	}

	b.WriteString(m.styles.ViewTitle.Render("Stats for " + result.Period))
	b.WriteString("\n")

	s := result.Statistics
	b.WriteString(renderStatLine(m.styles, "Number of weeks:", fmt.Sprintf("%d", s.NumberOfWeeks)))
	b.WriteString(renderStatLine(m.styles, "Average time per week:", timer.FormatDisplay(s.AveragePerWeek)))
	b.WriteString(renderStatLine(m.styles, "Number of active days:", fmt.Sprintf("%d", s.NumberOfActiveDays)))
	b.WriteString(renderStatLine(m.styles, "Average time per active day:", timer.FormatDisplay(s.AveragePerDay)))
	b.WriteString(renderStatLine(m.styles, "Total time:", timer.FormatDisplay(s.Total)))
	if m.target {
		b.WriteString(renderStatLine(m.styles, "Weeks below target:", fmt.Sprintf("%d", s.WeeksBelowTarget)))
	}

	if len(result.Weekly) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("Last %d weeks (hours):", len(result.Weekly))))
		b.WriteString("\n")
		b.WriteString(m.chart.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("←/→ year  a all time  r refresh"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.drawChart()
}

// drawChart rebuilds the weekly bar chart of the selected statistics.
func (m *StatsModel) drawChart() {
	width := 60
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}
	if width < 10 {
		width = 10
	}
	m.chart = barchart.New(width, 10)

	result := m.Current()
	if result == nil || len(result.Weekly) == 0 {
		return
	}
	m.chart.PushAll(weeklyBars(result.Weekly, m.styles))
	m.chart.Draw()
}

// weeklyBars converts week totals to chart bars in hours.
func weeklyBars(weeks []stats.WeekTotal, styles ui.Styles) []barchart.BarData {
	bars := make([]barchart.BarData, 0, len(weeks))
	for _, w := range weeks {
		bars = append(bars, barchart.BarData{
			Label: strings.Replace(w.Label, "Week ", "W", 1),
			Values: []barchart.BarValue{{
				Name:  w.Label,
				Value: float64(w.Seconds) / 3600.0,
				Style: styles.ChartBar,
			}},
		})
	}
	return bars
}

// loadStats creates a command to load the statistics of every year
func (m StatsModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		perYear, err := m.services.Stats.PerYear(context.Background())
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		overall, err := m.services.Stats.Overall(context.Background())
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		return statsLoadedMsg{perYear: perYear, overall: overall}
	}
}
