// Package timer holds the Timer record, its duration helpers and the
// repository that persists the list of timers as a single JSON blob.
package timer

import (
	"time"
)

// StorageKey is the name of the blob holding every timer.
const StorageKey = "timers"

// Timer is one recorded start/stop interval.
// A Timer without End is the open (running) timer.
type Timer struct {
	ID    string     `json:"id"`
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// IsOpen reports whether the timer has not been stopped yet.
func (t Timer) IsOpen() bool {
	return t.End == nil
}

// clone returns a copy that shares no pointers with t.
func (t Timer) clone() Timer {
	c := t
	if t.End != nil {
		end := *t.End
		c.End = &end
	}
	return c
}

// Patch lists the fields of a Timer to change. Nil fields are left untouched.
type Patch struct {
	Start *time.Time
	End   *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Start == nil && p.End == nil
}
