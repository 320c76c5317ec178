package cmd

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestListCmd(t *testing.T) {
	deps, stdout, _, exitCode := testDeps(t)
	startTimerAt(t, deps, testNow.Add(-time.Hour))
	if _, err := deps.Services.Timer.Stop(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, deps, "list", "--year", "2024"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{"2024  1 hour", "Week 3", "17 Jan  1 hour", "11:00 - 12:00"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout.String())
		}
	}
}

func TestListCmd_InvalidYear(t *testing.T) {
	deps, _, stderr, exitCode := testDeps(t)

	if err := runCommand(t, deps, "ls", "--year", "24"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "invalid year") {
		t.Errorf("expected year error, got %q", stderr.String())
	}
}

func TestEditCmd(t *testing.T) {
	deps, stdout, _, exitCode := testDeps(t)
	startTimerAt(t, deps, testNow.Add(-time.Hour))
	timers, _ := deps.Services.Timer.List(context.Background())

	if err := runCommand(t, deps, "edit", timers[0].ID[:8], "--start", "10:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "10:00 - running  2 hours") {
		t.Errorf("expected updated timer, got %q", stdout.String())
	}
}

func TestEditCmd_RequiresID(t *testing.T) {
	deps, _, _, _ := testDeps(t)

	if err := runCommand(t, deps, "edit"); err == nil {
		t.Error("expected an error without an id")
	}
}

func TestDeleteCmd(t *testing.T) {
	deps, stdout, _, exitCode := testDeps(t)
	startTimerAt(t, deps, testNow.Add(-time.Hour))
	timers, _ := deps.Services.Timer.List(context.Background())

	if err := runCommand(t, deps, "delete", timers[0].ID, "--yes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Deleted timer") {
		t.Errorf("expected deletion message, got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "[y/N]") {
		t.Errorf("--yes should skip the prompt, got %q", stdout.String())
	}
}
