package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDispatchUnregisteredPairIsSilentNoop(t *testing.T) {
	d := NewDispatch()
	m := &Model{}
	if cmd := d.Trigger(m, "tab0", "panel_missing"); cmd != nil {
		t.Fatalf("unregistered pair must dispatch to nothing")
	}
}

func TestDispatchLastWriteWins(t *testing.T) {
	d := NewDispatch()
	m := &Model{}
	first, second := 0, 0
	d.Register("tab0", "window_notes", func(*Model) tea.Cmd { first++; return nil })
	d.Register("tab0", "window_notes", func(*Model) tea.Cmd { second++; return nil })

	d.Trigger(m, "tab0", "window_notes")
	if first != 0 || second != 1 {
		t.Fatalf("re-registration must overwrite: first=%d second=%d", first, second)
	}
}

func TestDispatchKeysAreScopedToTab(t *testing.T) {
	d := NewDispatch()
	m := &Model{}
	hits := 0
	d.Register("tab0", "panel_chart", func(*Model) tea.Cmd { hits++; return nil })

	d.Trigger(m, "tab1", "panel_chart")
	if hits != 0 {
		t.Fatalf("same button id on another tab must not match")
	}
	if !d.Has("tab0", "panel_chart") || d.Has("tab1", "panel_chart") {
		t.Fatalf("Has must mirror the registration table")
	}
}

func TestDispatchNilHandlerIgnored(t *testing.T) {
	d := NewDispatch()
	d.Register("tab0", "panel_x", nil)
	if d.Has("tab0", "panel_x") {
		t.Fatalf("nil handler must not be recorded")
	}
}
