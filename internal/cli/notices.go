package cli

import (
	"fmt"

	"github.com/xolan/timers/internal/timer"
)

// Notices shown for timer actions, by the CLI and the interactive browser.
const (
	NoticeAlreadyRunning = "There is already a timer running!"
	NoticeStarted        = "Timer started!"
	NoticeNotRunning     = "There is no timer running!"
)

// NoticeStopped returns the notice shown after stopping a timer.
func NoticeStopped(seconds int64) string {
	return fmt.Sprintf("Timer stopped after %s!", timer.FormatDisplay(seconds))
}
