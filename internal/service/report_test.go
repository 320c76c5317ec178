package service

import (
	"context"
	"testing"
	"time"

	"github.com/xolan/timers/internal/config"
)

// addTimer records a closed timer through the timer service.
func addTimer(t *testing.T, s *Services, start, end time.Time) {
	t.Helper()
	ctx := context.Background()
	if _, _, err := s.Timer.Start(ctx, &start); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	if _, err := s.Timer.Stop(ctx, &end); err != nil {
		t.Fatalf("Stop() returned error: %v", err)
	}
}

func TestReportService_BuildEmpty(t *testing.T) {
	services, _ := newTestServices(t, config.DefaultConfig())

	years, err := services.Report.Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(years) != 0 {
		t.Errorf("expected no years, got %d", len(years))
	}
}

func TestReportService_Build(t *testing.T) {
	services, clock := newTestServices(t, config.DefaultConfig())
	day := clock.now.Truncate(24 * time.Hour)

	// Two timers on Wednesday, one on the Monday of the same week, one a year earlier.
	addTimer(t, services, day.Add(9*time.Hour), day.Add(10*time.Hour))
	addTimer(t, services, day.Add(10*time.Hour), day.Add(11*time.Hour+30*time.Minute))
	addTimer(t, services, day.AddDate(0, 0, -2).Add(9*time.Hour), day.AddDate(0, 0, -2).Add(9*time.Hour+20*time.Minute))
	addTimer(t, services, day.AddDate(-1, 0, 0).Add(9*time.Hour), day.AddDate(-1, 0, 0).Add(10*time.Hour))

	years, err := services.Report.Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(years) != 2 {
		t.Fatalf("expected 2 years, got %d", len(years))
	}
	if years[0].Key != "2024" || years[1].Key != "2023" {
		t.Errorf("years = %s, %s; expected 2024, 2023", years[0].Key, years[1].Key)
	}

	y := years[0]
	if len(y.Weeks) != 1 {
		t.Fatalf("expected 1 week in 2024, got %d", len(y.Weeks))
	}
	w := y.Weeks[0]
	if w.Key != "2024-W03" {
		t.Errorf("week key = %s, expected 2024-W03", w.Key)
	}
	if len(w.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(w.Days))
	}
	if w.Days[0].Key != "2024-01-17" || w.Days[1].Key != "2024-01-15" {
		t.Errorf("days = %s, %s", w.Days[0].Key, w.Days[1].Key)
	}
	if w.Days[0].Sum != 9000 {
		t.Errorf("Wednesday sum = %d, expected 9000", w.Days[0].Sum)
	}
	if w.Sum != 10200 || y.Sum != 10200 {
		t.Errorf("week sum = %d, year sum = %d, expected 10200", w.Sum, y.Sum)
	}
}

func TestReportService_Snapshot(t *testing.T) {
	services, clock := newTestServices(t, config.DefaultConfig())
	ctx := context.Background()

	addTimer(t, services, clock.now.Add(-3*time.Hour), clock.now.Add(-2*time.Hour))
	start := clock.now.Add(-30 * time.Minute)
	if _, _, err := services.Timer.Start(ctx, &start); err != nil {
		t.Fatal(err)
	}

	snap, err := services.Report.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Timers) != 2 {
		t.Errorf("expected 2 timers, got %d", len(snap.Timers))
	}
	if snap.Current == nil || !snap.Current.Start.Equal(start) {
		t.Errorf("current = %+v, expected timer started at %v", snap.Current, start)
	}
	if !snap.TakenAt.Equal(clock.now) {
		t.Errorf("TakenAt = %v, expected %v", snap.TakenAt, clock.now)
	}
	// The open timer counts up to now.
	if got := snap.Years[0].Sum; got != 3600+1800 {
		t.Errorf("year sum = %d, expected %d", got, 3600+1800)
	}
}

func TestReportService_Rebuild(t *testing.T) {
	services, clock := newTestServices(t, config.DefaultConfig())
	ctx := context.Background()

	start := clock.now.Add(-10 * time.Minute)
	_, _, _ = services.Timer.Start(ctx, &start)

	snap, err := services.Report.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}

	years, err := services.Report.Rebuild(snap.Timers, clock.now.Add(20*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := years[0].Sum; got != 1800 {
		t.Errorf("rebuilt sum = %d, expected 1800", got)
	}
}

func TestReportService_Options(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.WeekStartDay = "sunday"
	cfg.WeeklyTarget = "40"
	services, clock := newTestServices(t, cfg)

	opts, err := services.Report.Options(clock.now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.WeekStart != time.Sunday {
		t.Errorf("WeekStart = %v, expected Sunday", opts.WeekStart)
	}
	if opts.WeeklyTargetHours != 40 {
		t.Errorf("WeeklyTargetHours = %d, expected 40", opts.WeeklyTargetHours)
	}
	if opts.Location != time.UTC {
		t.Errorf("Location = %v, expected UTC", opts.Location)
	}
}

func TestReportService_InvalidTimezone(t *testing.T) {
	services, _ := newTestServices(t, config.DefaultConfig())
	services.Report.config.Timezone = "Not/AZone"

	if _, err := services.Report.Build(context.Background()); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
