package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/xolan/timers/internal/cli"
	"github.com/xolan/timers/internal/export"
	"github.com/xolan/timers/internal/notify"
	"github.com/xolan/timers/internal/report"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/timer"
	"github.com/xolan/timers/internal/timeutil"
	"github.com/xolan/timers/internal/tui/ui"
)

// EmptyMessage is shown before the first timer was ever started.
const EmptyMessage = "There are no timers yet. Start by creating a timer using 'Start Timer'."

// Refresh intervals of the timers view
const (
	ClockInterval   = time.Second
	RebuildInterval = 10 * time.Second
)

// editTimeLayout is the layout of the start and end fields of the edit form.
const editTimeLayout = "2006-01-02 15:04"

type timersMode int

const (
	timersModeNormal timersMode = iota
	timersModeEdit
	timersModeDelete
)

// TimersModel shows the running timer and the year, week and day hierarchy.
type TimersModel struct {
	services *service.Services
	notifier notify.Notifier
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	cursor int
	offset int
	loaded bool
	err    error

	// Snapshot of the last storage read; years are regrouped from it on every rebuild tick
	timers  []timer.Timer
	current *timer.Timer
	years   []report.Year
	items   []listItem
	now     time.Time
	loc     *time.Location

	notice    string
	noticeErr bool

	// Edit and delete forms
	mode      timersMode
	form      *huh.Form
	target    timer.Timer
	startVal  *string
	endVal    *string
	confirmed *bool
}

// NewTimersModel creates the timers view. Notices go to notifier as well as the status line.
func NewTimersModel(services *service.Services, notifier notify.Notifier, styles ui.Styles, keys ui.KeyMap) TimersModel {
	return TimersModel{
		services:  services,
		notifier:  notifier,
		styles:    styles,
		keys:      keys,
		loc:       time.Local,
		startVal:  new(string),
		endVal:    new(string),
		confirmed: new(bool),
	}
}

type snapshotLoadedMsg struct {
	snap *service.Snapshot
	opts report.Options
	err  error
}

// clockTickMsg updates the elapsed time of the running timer.
type clockTickMsg time.Time

// rebuildTickMsg regroups the loaded timers at the current time.
type rebuildTickMsg time.Time

type actionDoneMsg struct {
	notice  string
	err     error
	changed bool
}

// Init loads the timers and starts both refresh ticks.
func (m TimersModel) Init() tea.Cmd {
	return tea.Batch(m.load(), clockTick(), rebuildTick())
}

// Reload reads the timers again without starting new ticks.
func (m TimersModel) Reload() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m TimersModel) Update(msg tea.Msg) (TimersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != timersModeNormal {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)

	case snapshotLoadedMsg:
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.loaded = true
		m.timers = msg.snap.Timers
		m.current = msg.snap.Current
		m.now = msg.snap.TakenAt
		m.loc = msg.opts.Location
		m.setYears(msg.snap.Years)
		return m, nil

	case clockTickMsg:
		m.now = m.services.Report.Now()
		return m, clockTick()

	case rebuildTickMsg:
		if m.loaded {
			m.now = m.services.Report.Now()
			years, err := m.services.Report.Rebuild(m.timers, m.now)
			if err != nil {
				m.err = err
			} else {
				m.setYears(years)
			}
		}
		return m, rebuildTick()

	case actionDoneMsg:
		m.mode = timersModeNormal
		m.form = nil
		if msg.err != nil {
			m.notice = "Error: " + msg.err.Error()
			m.noticeErr = true
		} else if msg.notice != "" {
			m.notice = msg.notice
			m.noticeErr = false
			if m.notifier != nil {
				_ = m.notifier.Notify(msg.notice)
			}
		}
		if msg.changed {
			return m, tea.Batch(m.load(), timersChanged)
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	// Internal messages of an open form
	if m.mode != timersModeNormal && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m TimersModel) handleKey(msg tea.KeyMsg) (TimersModel, tea.Cmd) {
	page := m.listHeight()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-page)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(page)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.items))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.items))
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggle()
	case key.Matches(msg, m.keys.Edit):
		if t := m.SelectedTimer(); t != nil {
			return m.openEditForm(*t)
		}
	case key.Matches(msg, m.keys.Delete):
		if t := m.SelectedTimer(); t != nil {
			return m.openDeleteForm(*t)
		}
	case key.Matches(msg, m.keys.Export):
		return m, m.export()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()
	}
	return m, nil
}

func (m *TimersModel) moveCursor(delta int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.items)-1)
	m.offset = scrollWindow(m.cursor, m.offset, m.listHeight(), len(m.items))
}

// setYears replaces the hierarchy, keeping the cursor on the same timer when it still exists.
func (m *TimersModel) setYears(years []report.Year) {
	var selectedID string
	if t := m.SelectedTimer(); t != nil {
		selectedID = t.ID
	}

	m.years = years
	m.items = flatten(years)

	if selectedID != "" {
		for i, item := range m.items {
			if item.timer != nil && item.timer.ID == selectedID {
				m.cursor = i
				break
			}
		}
	}
	m.moveCursor(0)
}

// SelectedTimer returns the timer under the cursor, or nil when the cursor is on a header.
func (m TimersModel) SelectedTimer() *timer.Timer {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor].timer
}

func (m TimersModel) openEditForm(t timer.Timer) (TimersModel, tea.Cmd) {
	m.target = t
	*m.startVal = t.Start.In(m.loc).Format(editTimeLayout)
	*m.endVal = ""
	if t.End != nil {
		*m.endVal = t.End.In(m.loc).Format(editTimeLayout)
	}

	validate := func(optional bool) func(string) error {
		return func(s string) error {
			if optional && strings.TrimSpace(s) == "" {
				return nil
			}
			_, err := timeutil.ParseDateTime(s, m.now, m.loc)
			return err
		}
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Start").Placeholder(editTimeLayout).
				Value(m.startVal).Validate(validate(false)),
			huh.NewInput().Title("End").Placeholder("empty keeps it unchanged").
				Value(m.endVal).Validate(validate(true)),
		).Title("Edit timer " + cli.ShortID(t.ID)),
	).WithShowHelp(true).WithShowErrors(true)

	m.mode = timersModeEdit
	return m, m.form.Init()
}

func (m TimersModel) openDeleteForm(t timer.Timer) (TimersModel, tea.Cmd) {
	m.target = t
	*m.confirmed = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete this timer?").
				Description(cli.FormatTimerLine(t, m.now, m.loc)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(m.confirmed),
		),
	)

	m.mode = timersModeDelete
	return m, m.form.Init()
}

func (m TimersModel) updateForm(msg tea.Msg) (TimersModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.mode = timersModeNormal
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		mode := m.mode
		m.mode = timersModeNormal
		m.form = nil
		if mode == timersModeEdit {
			return m, m.saveEdit(m.target, *m.startVal, *m.endVal)
		}
		if *m.confirmed {
			return m, m.deleteTimer(m.target)
		}
		m.notice = "Deletion cancelled"
		m.noticeErr = false
		return m, nil
	case huh.StateAborted:
		m.mode = timersModeNormal
		m.form = nil
		return m, nil
	}
	return m, cmd
}

// IsInputMode returns true when a form captures keyboard input
func (m TimersModel) IsInputMode() bool {
	return m.mode != timersModeNormal
}

// View implements tea.Model
func (m TimersModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Timers"))
	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(m.form.View())
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if !m.loaded {
		b.WriteString("Loading...")
		return b.String()
	}

	b.WriteString(m.renderCurrent())
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(m.styles.Muted.Render(EmptyMessage))
	} else {
		b.WriteString(m.renderList())
		b.WriteString(divider(m.width))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Total: %s", timer.FormatDisplay(report.Total(m.years))))
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		if m.noticeErr {
			b.WriteString(m.styles.Error.Render(m.notice))
		} else {
			b.WriteString(m.styles.Success.Render(m.notice))
		}
	}

	return b.String()
}

// renderCurrent renders the running timer with its ticking clock and the start/stop button.
func (m TimersModel) renderCurrent() string {
	if m.current == nil {
		return m.styles.TimerStopped.Render("No timer running") + "  " +
			m.styles.Button.Render("Start Timer")
	}

	elapsed := timer.Duration(*m.current, m.now)
	return m.styles.TimerRunning.Render("● Timer Running") + "  " +
		m.styles.TimerElapsed.Render(timer.FormatClock(elapsed)) + "  " +
		m.styles.Muted.Render("started "+cli.FormatTimerStartTime(m.current.Start, m.now.In(m.loc))) + "  " +
		m.styles.Button.Render("Stop Timer")
}

func (m TimersModel) renderList() string {
	var b strings.Builder
	height := m.listHeight()
	end := len(m.items)
	if height > 0 && m.offset+height < end {
		end = m.offset + height
	}

	for i := m.offset; i < end; i++ {
		line := renderItem(m.items[i], m.styles, m.now, m.loc)
		if i == m.cursor {
			line = m.styles.RowSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// listHeight is the number of list lines that fit, or 0 when the size is unknown.
func (m TimersModel) listHeight() int {
	if m.height == 0 {
		return 0
	}
	// Title, current timer, total and notice lines
	h := m.height - 9
	if h < 3 {
		h = 3
	}
	return h
}

// SetSize sets the view dimensions
func (m *TimersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.offset = scrollWindow(m.cursor, m.offset, m.listHeight(), len(m.items))
}

func (m TimersModel) load() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.services.Report.Snapshot(context.Background())
		if err != nil {
			return snapshotLoadedMsg{err: err}
		}
		opts, err := m.services.Report.Options(snap.TakenAt)
		if err != nil {
			return snapshotLoadedMsg{err: err}
		}
		return snapshotLoadedMsg{snap: snap, opts: opts}
	}
}

// toggle stops the running timer or starts a new one.
func (m TimersModel) toggle() tea.Cmd {
	running := m.current != nil
	return func() tea.Msg {
		ctx := context.Background()
		if running {
			stopped, err := m.services.Timer.Stop(ctx, nil)
			if errors.Is(err, service.ErrNoTimerRunning) {
				return actionDoneMsg{notice: cli.NoticeNotRunning, changed: true}
			}
			if err != nil {
				return actionDoneMsg{err: err}
			}
			seconds := timer.DurationSeconds(*stopped, m.services.Timer.Now())
			return actionDoneMsg{notice: cli.NoticeStopped(seconds), changed: true}
		}

		_, _, err := m.services.Timer.Start(ctx, nil)
		if errors.Is(err, service.ErrTimerAlreadyRunning) {
			return actionDoneMsg{notice: cli.NoticeAlreadyRunning, changed: true}
		}
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{notice: cli.NoticeStarted, changed: true}
	}
}

func (m TimersModel) saveEdit(t timer.Timer, startStr, endStr string) tea.Cmd {
	now, loc := m.now, m.loc
	return func() tea.Msg {
		var patch timer.Patch
		start, err := timeutil.ParseDateTime(startStr, now, loc)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if !start.Equal(t.Start) {
			patch.Start = &start
		}
		if strings.TrimSpace(endStr) != "" {
			end, err := timeutil.ParseDateTime(endStr, now, loc)
			if err != nil {
				return actionDoneMsg{err: err}
			}
			if t.End == nil || !end.Equal(*t.End) {
				patch.End = &end
			}
		}
		if patch.IsEmpty() {
			return actionDoneMsg{notice: "Nothing to change"}
		}

		updated, err := m.services.Timer.Edit(context.Background(), t.ID, patch)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{
			notice:  "Updated timer " + cli.FormatTimerLine(updated, m.services.Timer.Now(), loc),
			changed: true,
		}
	}
}

func (m TimersModel) deleteTimer(t timer.Timer) tea.Cmd {
	return func() tea.Msg {
		deleted, err := m.services.Timer.Delete(context.Background(), t.ID)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		seconds := timer.DurationSeconds(deleted, m.services.Timer.Now())
		return actionDoneMsg{
			notice:  fmt.Sprintf("Deleted timer %s (%s)", cli.ShortID(deleted.ID), timer.FormatDisplay(seconds)),
			changed: true,
		}
	}
}

func (m TimersModel) export() tea.Cmd {
	return func() tea.Msg {
		path, err := m.services.Export.Export(context.Background(), export.FormatJSON, "")
		if err != nil {
			return actionDoneMsg{err: fmt.Errorf("failed to write export file: %w", err)}
		}
		return actionDoneMsg{notice: "Exported timers to " + path}
	}
}

func timersChanged() tea.Msg {
	return ui.TimersChangedMsg{}
}

func clockTick() tea.Cmd {
	return tea.Tick(ClockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func rebuildTick() tea.Cmd {
	return tea.Tick(RebuildInterval, func(t time.Time) tea.Msg {
		return rebuildTickMsg(t)
	})
}
