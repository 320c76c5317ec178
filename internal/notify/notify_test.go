package notify

import (
	"bytes"
	"errors"
	"testing"
)

func TestHUD_PrintsOnly(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, false)
	called := false
	h.send = func(title, message string, icon any) error {
		called = true
		return nil
	}

	if err := h.Notify("Timer started!"); err != nil {
		t.Fatalf("Notify() returned error: %v", err)
	}
	if buf.String() != "Timer started!\n" {
		t.Errorf("output = %q", buf.String())
	}
	if called {
		t.Error("desktop notification sent while disabled")
	}
}

func TestHUD_Desktop(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, true)

	var gotTitle, gotMessage string
	h.send = func(title, message string, icon any) error {
		gotTitle, gotMessage = title, message
		return nil
	}

	if err := h.Notify("There is no timer running!"); err != nil {
		t.Fatalf("Notify() returned error: %v", err)
	}
	if gotTitle != Title || gotMessage != "There is no timer running!" {
		t.Errorf("desktop notification = %q / %q", gotTitle, gotMessage)
	}
}

func TestHUD_DesktopFailure(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, true)
	boom := errors.New("no dbus")
	h.send = func(string, string, any) error { return boom }

	err := h.Notify("Timer started!")
	if !errors.Is(err, boom) {
		t.Errorf("Notify() error = %v, expected %v", err, boom)
	}
	if buf.String() != "Timer started!\n" {
		t.Errorf("line should be printed before the desktop failure, got %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	if r.Last() != "" {
		t.Error("empty recorder should have no last message")
	}
	_ = r.Notify("one")
	_ = r.Notify("two")
	if r.Last() != "two" || len(r.Messages) != 2 {
		t.Errorf("recorder = %+v", r.Messages)
	}
}
