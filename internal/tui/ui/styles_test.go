package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"ViewTitle", styles.ViewTitle},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusHelp", styles.StatusHelp},
		{"RowSelected", styles.RowSelected},
		{"RowNormal", styles.RowNormal},
		{"YearRow", styles.YearRow},
		{"WeekRow", styles.WeekRow},
		{"DayRow", styles.DayRow},
		{"TimerID", styles.TimerID},
		{"TimerRange", styles.TimerRange},
		{"Duration", styles.Duration},
		{"Shortfall", styles.Shortfall},
		{"TimerRunning", styles.TimerRunning},
		{"TimerStopped", styles.TimerStopped},
		{"TimerElapsed", styles.TimerElapsed},
		{"Button", styles.Button},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"ChartBar", styles.ChartBar},
		{"Muted", styles.Muted},
		{"Dialog", styles.Dialog},
		{"DialogTitle", styles.DialogTitle},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.style.Render("test"), "test") {
				t.Errorf("style %s does not render its text", tt.name)
			}
		})
	}
}

func TestStatLabelAlignsValues(t *testing.T) {
	styles := DefaultStyles()

	a := lipgloss.Width(styles.StatLabel.Render("Number of weeks:"))
	b := lipgloss.Width(styles.StatLabel.Render("Average time per active day:"))
	if a != b {
		t.Errorf("stat labels have different widths: %d and %d", a, b)
	}
}

func TestNewStylesFromRegistry(t *testing.T) {
	tp := NewThemeProvider("nord")
	styles := NewStylesFromRegistry(tp.Registry())

	if !strings.Contains(styles.YearRow.Render("2024"), "2024") {
		t.Error("YearRow style does not render its text")
	}
	if !strings.Contains(styles.Dialog.Render("confirm"), "confirm") {
		t.Error("Dialog style does not render its text")
	}
}
