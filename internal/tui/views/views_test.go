package views

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/timers/internal/config"
	"github.com/xolan/timers/internal/notify"
	"github.com/xolan/timers/internal/service"
	"github.com/xolan/timers/internal/storage"
	"github.com/xolan/timers/internal/tui/ui"
)

// testClock is the settable clock of the services under test.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

// setupTestServices creates services over an in-memory store, in UTC, on Wednesday 2024-01-17 12:00.
func setupTestServices(t *testing.T) (*service.Services, *testClock) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.ExportDir = t.TempDir()

	clock := &testClock{now: time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)}
	services := service.NewServicesWithStore(storage.NewMemoryStore(),
		filepath.Join(t.TempDir(), "config.toml"), cfg, service.WithClock(clock.Now))
	t.Cleanup(func() { _ = services.Close() })
	return services, clock
}

// addTimer records a timer; a zero end leaves it running.
func addTimer(t *testing.T, services *service.Services, start, end time.Time) {
	t.Helper()
	ctx := context.Background()
	if _, _, err := services.Timer.Start(ctx, &start); err != nil {
		t.Fatal(err)
	}
	if !end.IsZero() {
		if _, err := services.Timer.Stop(ctx, &end); err != nil {
			t.Fatal(err)
		}
	}
}

func at(day, hour, min int) time.Time {
	return time.Date(2024, time.January, day, hour, min, 0, 0, time.UTC)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedTimersModel returns a timers view after its first load.
func loadedTimersModel(t *testing.T, services *service.Services, notifier notify.Notifier) TimersModel {
	t.Helper()
	m := NewTimersModel(services, notifier, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.load()())
	if m.err != nil {
		t.Fatalf("load failed: %v", m.err)
	}
	return m
}

func TestFlatten(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 10, 0))
	addTimer(t, services, at(17, 10, 30), at(17, 11, 0))
	addTimer(t, services, at(15, 9, 0), at(15, 9, 45))

	years, err := services.Report.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	items := flatten(years)

	// year, week, day 17, 2 timers, day 15, 1 timer
	if len(items) != 7 {
		t.Fatalf("expected 7 items, got %d", len(items))
	}
	if items[0].timer != nil || items[1].timer != nil || items[2].timer != nil {
		t.Error("expected year, week and day headers first")
	}
	if items[3].timer == nil || !items[3].timer.Start.Equal(at(17, 10, 30)) {
		t.Errorf("expected most recent timer of the day first, got %+v", items[3].timer)
	}
	if items[5].timer != nil {
		t.Error("expected the second day header at index 5")
	}
}

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		cursor, offset, height, total int
		expected                      int
	}{
		{0, 0, 0, 50, 0},
		{5, 0, 10, 8, 0},
		{12, 0, 10, 50, 3},
		{2, 5, 10, 50, 2},
		{49, 0, 10, 50, 40},
		{5, 45, 10, 50, 5},
	}

	for _, tt := range tests {
		if got := scrollWindow(tt.cursor, tt.offset, tt.height, tt.total); got != tt.expected {
			t.Errorf("scrollWindow(%d, %d, %d, %d) = %d, expected %d",
				tt.cursor, tt.offset, tt.height, tt.total, got, tt.expected)
		}
	}
}

func TestTimersModel_Empty(t *testing.T) {
	services, _ := setupTestServices(t)
	m := loadedTimersModel(t, services, nil)

	view := m.View()
	if !strings.Contains(view, EmptyMessage) {
		t.Errorf("expected empty message, got:\n%s", view)
	}
	if !strings.Contains(view, "Start Timer") {
		t.Errorf("expected start button, got:\n%s", view)
	}
}

func TestTimersModel_View(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 10, 30))
	m := loadedTimersModel(t, services, nil)

	view := m.View()
	for _, want := range []string{"2024", "Week 3", "17 Jan", "09:00 - 10:30", "1 hour and 30 minutes", "Total:"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestTimersModel_ToggleStarts(t *testing.T) {
	services, _ := setupTestServices(t)
	recorder := &notify.Recorder{}
	m := loadedTimersModel(t, services, recorder)

	msg := m.toggle()()
	m, cmd := m.Update(msg)

	if m.notice != "Timer started!" {
		t.Errorf("notice = %q", m.notice)
	}
	if len(recorder.Messages) != 1 || recorder.Messages[0] != "Timer started!" {
		t.Errorf("notifier got %v", recorder.Messages)
	}
	if cmd == nil {
		t.Error("expected a reload after starting")
	}

	m, _ = m.Update(m.load()())
	if m.current == nil {
		t.Fatal("expected a running timer after reload")
	}
	if !strings.Contains(m.View(), "Stop Timer") {
		t.Error("expected the stop button while a timer runs")
	}
}

func TestTimersModel_ToggleStops(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 11, 0), time.Time{})
	m := loadedTimersModel(t, services, nil)

	m, _ = m.Update(m.toggle()())

	if m.notice != "Timer stopped after 1 hour!" {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestTimersModel_ToggleWithStaleSnapshot(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 11, 0), time.Time{})
	m := loadedTimersModel(t, services, nil)

	// Stopped elsewhere after the snapshot was taken
	if _, err := services.Timer.Stop(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	m, _ = m.Update(m.toggle()())
	if m.notice != "There is no timer running!" {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestTimersModel_ClockTick(t *testing.T) {
	services, clock := setupTestServices(t)
	addTimer(t, services, at(17, 11, 0), time.Time{})
	m := loadedTimersModel(t, services, nil)

	clock.now = clock.now.Add(5 * time.Second)
	m, cmd := m.Update(clockTickMsg(clock.now))

	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	if !strings.Contains(m.View(), "01:00:05") {
		t.Errorf("expected elapsed 01:00:05 in view:\n%s", m.View())
	}
}

func TestTimersModel_RebuildTick(t *testing.T) {
	services, clock := setupTestServices(t)
	addTimer(t, services, at(17, 11, 0), time.Time{})
	m := loadedTimersModel(t, services, nil)

	if m.years[0].Sum != 3600 {
		t.Fatalf("year sum = %d, expected 3600", m.years[0].Sum)
	}

	clock.now = clock.now.Add(30 * time.Minute)
	m, _ = m.Update(rebuildTickMsg(clock.now))

	if m.years[0].Sum != 5400 {
		t.Errorf("year sum after rebuild = %d, expected 5400", m.years[0].Sum)
	}
}

func TestTimersModel_CursorSelectsTimers(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 10, 0))
	m := loadedTimersModel(t, services, nil)

	if m.SelectedTimer() != nil {
		t.Error("cursor should start on the year header")
	}

	for i := 0; i < 3; i++ {
		m, _ = m.Update(keyMsg("j"))
	}
	if m.SelectedTimer() == nil {
		t.Fatal("expected the timer to be selected")
	}

	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 3 {
		t.Errorf("cursor moved past the last item: %d", m.cursor)
	}

	m, _ = m.Update(keyMsg("g"))
	if m.cursor != 0 {
		t.Errorf("expected cursor at top, got %d", m.cursor)
	}
}

func TestTimersModel_EditFormOpensAndCancels(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 10, 0))
	m := loadedTimersModel(t, services, nil)

	// Edit on a header does nothing
	m, _ = m.Update(keyMsg("e"))
	if m.IsInputMode() {
		t.Fatal("edit should need a selected timer")
	}

	m, _ = m.Update(keyMsg("G"))
	m, _ = m.Update(keyMsg("e"))
	if !m.IsInputMode() {
		t.Fatal("expected the edit form to open")
	}
	if *m.startVal != "2024-01-17 09:00" || *m.endVal != "2024-01-17 10:00" {
		t.Errorf("form prefilled with %q and %q", *m.startVal, *m.endVal)
	}

	m, _ = m.Update(keyMsg("esc"))
	if m.IsInputMode() {
		t.Error("esc should close the form")
	}
}

func TestTimersModel_SaveEdit(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 10, 0))
	m := loadedTimersModel(t, services, nil)
	m, _ = m.Update(keyMsg("G"))
	target := *m.SelectedTimer()

	msg := m.saveEdit(target, "2024-01-17 08:00", "2024-01-17 10:00")().(actionDoneMsg)
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if !strings.Contains(msg.notice, "08:00 - 10:00  2 hours") {
		t.Errorf("notice = %q", msg.notice)
	}

	msg = m.saveEdit(target, "2024-01-17 08:00", "2024-01-17 07:00")().(actionDoneMsg)
	if msg.err == nil {
		t.Error("expected an error for an end before the start")
	}

	msg = m.saveEdit(target, "2024-01-17 09:00", "2024-01-17 10:00")().(actionDoneMsg)
	if msg.changed || msg.notice != "Nothing to change" {
		t.Errorf("unchanged form gave %+v", msg)
	}
}

func TestTimersModel_DeleteTimer(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 10, 0))
	m := loadedTimersModel(t, services, nil)
	m, _ = m.Update(keyMsg("G"))

	m, _ = m.Update(keyMsg("d"))
	if !m.IsInputMode() {
		t.Fatal("expected the delete confirmation to open")
	}

	m, _ = m.Update(m.deleteTimer(m.target)())
	if !strings.HasPrefix(m.notice, "Deleted timer") || !strings.Contains(m.notice, "(1 hour)") {
		t.Errorf("notice = %q", m.notice)
	}
	if m.IsInputMode() {
		t.Error("form should close after the action")
	}

	timers, _ := services.Timer.List(context.Background())
	if len(timers) != 0 {
		t.Errorf("expected no timers left, got %d", len(timers))
	}
}

func TestTimersModel_Export(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 10, 0))
	m := loadedTimersModel(t, services, nil)

	m, _ = m.Update(m.export()())

	if !strings.HasPrefix(m.notice, "Exported timers to ") || !strings.HasSuffix(m.notice, ".json") {
		t.Errorf("notice = %q", m.notice)
	}
	dir, _ := services.Export.Dir()
	matches, _ := filepath.Glob(filepath.Join(dir, "timers-export-*.json"))
	if len(matches) != 1 {
		t.Errorf("expected one export file, got %v", matches)
	}
}

func TestStatsModel(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 11, 0))
	addTimer(t, services, at(8, 9, 0), at(8, 10, 0))

	m := NewStatsModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.loadStats()())

	view := m.View()
	for _, want := range []string{"Stats for 2024", "Number of weeks:", "2", "Average time per active day:", "1 hour and 30 minutes"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Weeks below target:") {
		t.Error("weeks below target shown without a target")
	}

	m, _ = m.Update(keyMsg("a"))
	if !strings.Contains(m.View(), "Stats for all time") {
		t.Errorf("expected all time stats after 'a', got:\n%s", m.View())
	}
}

func TestStatsModel_Empty(t *testing.T) {
	services, _ := setupTestServices(t)

	m := NewStatsModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.loadStats()())

	if !strings.Contains(m.View(), EmptyMessage) {
		t.Errorf("expected empty message, got:\n%s", m.View())
	}
}

func TestStatsModel_ReloadsWhenTimersChange(t *testing.T) {
	services, _ := setupTestServices(t)
	m := NewStatsModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())

	_, cmd := m.Update(ui.TimersChangedMsg{})
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	if _, ok := cmd().(statsLoadedMsg); !ok {
		t.Error("expected the reload to produce statsLoadedMsg")
	}
}

func TestWeeklyBars(t *testing.T) {
	services, _ := setupTestServices(t)
	addTimer(t, services, at(17, 9, 0), at(17, 11, 0))

	result, err := services.Stats.ForYear(context.Background(), 2024)
	if err != nil {
		t.Fatal(err)
	}

	bars := weeklyBars(result.Weekly, ui.DefaultStyles())
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(bars))
	}
	if bars[0].Label != "W3" {
		t.Errorf("label = %q, expected W3", bars[0].Label)
	}
	if bars[0].Values[0].Value != 2 {
		t.Errorf("value = %v, expected 2 hours", bars[0].Values[0].Value)
	}
}

func TestConfigModel(t *testing.T) {
	services, _ := setupTestServices(t)
	tp := ui.NewThemeProvider("")

	m := NewConfigModel(services, tp, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.Init()())

	view := m.View()
	for _, want := range []string{"Configuration", "week_start_day:", "monday", "weekly_target:", "(not set)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestConfigModel_ToggleNotifications(t *testing.T) {
	services, _ := setupTestServices(t)
	tp := ui.NewThemeProvider("")

	m := NewConfigModel(services, tp, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.Init()())

	_, cmd := m.Update(keyMsg("n"))
	m, _ = m.Update(cmd())

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if !m.config.Notifications || !services.Config.Get().Notifications {
		t.Error("expected notifications to be enabled")
	}
	if !services.Config.Exists() {
		t.Error("expected the config file to be written")
	}
}

func TestConfigModel_ThemeSelector(t *testing.T) {
	services, _ := setupTestServices(t)
	tp := ui.NewThemeProvider("")

	m := NewConfigModel(services, tp, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(keyMsg("t"))
	if !m.IsSelectingTheme() {
		t.Fatal("expected the theme selector to open")
	}

	m, _ = m.Update(keyMsg("j"))
	expected := tp.AvailableThemes()[m.themeCursor]

	m, cmd := m.Update(keyMsg("enter"))
	if m.IsSelectingTheme() {
		t.Error("expected the selector to close")
	}
	req, ok := cmd().(ui.ThemeChangeRequestMsg)
	if !ok || req.ThemeName != expected {
		t.Errorf("expected request for %q, got %+v", expected, req)
	}
}
