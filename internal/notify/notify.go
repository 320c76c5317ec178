// Package notify shows short user notices such as "Timer started!".
package notify

import (
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
)

// Title is the title of desktop notifications.
const Title = "Timers"

// Notifier shows a one-line notice to the user.
type Notifier interface {
	Notify(message string) error
}

// sendFunc matches beeep.Notify.
type sendFunc func(title, message string, icon any) error

// HUD prints notices to a writer and optionally raises a desktop notification.
type HUD struct {
	out     io.Writer
	desktop bool
	send    sendFunc
}

// New returns a HUD writing to out. When desktop is true every notice is also
// sent as a desktop notification.
func New(out io.Writer, desktop bool) *HUD {
	beeep.AppName = Title
	return &HUD{out: out, desktop: desktop, send: beeep.Notify}
}

// Notify prints message and, if enabled, raises a desktop notification.
// A failing desktop notification is returned after the line was printed.
func (h *HUD) Notify(message string) error {
	if _, err := fmt.Fprintln(h.out, message); err != nil {
		return err
	}
	if !h.desktop {
		return nil
	}
	if err := h.send(Title, message, ""); err != nil {
		return fmt.Errorf("desktop notification failed: %w", err)
	}
	return nil
}

// Recorder collects notices in memory, used by the interactive browser and tests.
type Recorder struct {
	Messages []string
}

// Notify records message.
func (r *Recorder) Notify(message string) error {
	r.Messages = append(r.Messages, message)
	return nil
}

// Last returns the most recent notice, or "".
func (r *Recorder) Last() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}
