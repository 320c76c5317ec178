package cmd

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestStatsCmd(t *testing.T) {
	deps, stdout, _, exitCode := testDeps(t)
	startTimerAt(t, deps, testNow.Add(-2*time.Hour))
	if _, err := deps.Services.Timer.Stop(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, deps, "stats"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{"Stats for 2024", "Number of weeks:", "Average time per active day:  2 hours"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout.String())
		}
	}
}

func TestStatsCmd_YearAndAllExclusive(t *testing.T) {
	deps, _, _, _ := testDeps(t)

	if err := runCommand(t, deps, "stats", "--year", "2024", "--all"); err == nil {
		t.Error("expected an error for --year together with --all")
	}
}

func TestStatsCmd_EmptyYear(t *testing.T) {
	deps, _, stderr, exitCode := testDeps(t)

	if err := runCommand(t, deps, "stats", "--year", "2020"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "No timers recorded in 2020") {
		t.Errorf("expected missing year error, got %q", stderr.String())
	}
}
