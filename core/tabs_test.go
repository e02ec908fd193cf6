package core

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestStrip() (*TabStrip, *Dispatch) {
	d := NewDispatch()
	return NewTabStrip(d, DefaultAccents()), d
}

func TestAddTabAssignsPositionalIDs(t *testing.T) {
	s, _ := newTestStrip()
	id0 := s.AddTab("Numerology")
	id1 := s.AddTab("Astrology")
	if id0 != "tab0" || id1 != "tab1" {
		t.Fatalf("tab ids must derive from position: %q %q", id0, id1)
	}
	if idx, ok := s.TabIndex(id1); !ok || idx != 1 {
		t.Fatalf("reverse lookup mismatch: %d %v", idx, ok)
	}
	if s.TabID(0) != "tab0" {
		t.Fatalf("forward lookup mismatch")
	}
}

func TestTabIDSynthesizesMissingEntries(t *testing.T) {
	s, _ := newTestStrip()
	s.AddTab("Numerology")
	id := s.TabID(2)
	if id != "tab2" {
		t.Fatalf("synthesized id mismatch: %q", id)
	}
	if s.Len() != 3 {
		t.Fatalf("synthesis must register the in-between tabs, len=%d", s.Len())
	}
	if idx, ok := s.TabIndex("tab2"); !ok || idx != 2 {
		t.Fatalf("synthesized tab must be addressable")
	}
}

func TestAddButtonUnknownTabFails(t *testing.T) {
	s, _ := newTestStrip()
	_, err := s.AddPanelButton("tab9", "Chart", "", func(*Model) tea.Cmd { return nil })
	if !errors.Is(err, ErrTabNotFound) {
		t.Fatalf("expected ErrTabNotFound, got %v", err)
	}
}

func TestButtonIdentifierNormalization(t *testing.T) {
	s, _ := newTestStrip()
	tab := s.AddTab("Numerology")
	pid, err := s.AddPanelButton(tab, "Number Notes", "", func(*Model) tea.Cmd { return nil })
	if err != nil {
		t.Fatalf("add panel button: %v", err)
	}
	wid, err := s.AddWindowButton(tab, "Number Notes", "", func(*Model) tea.Cmd { return nil })
	if err != nil {
		t.Fatalf("add window button: %v", err)
	}
	if pid != "panel_number_notes" || wid != "window_number_notes" {
		t.Fatalf("normalization mismatch: %q %q", pid, wid)
	}
}

func TestButtonActivationGoesThroughDispatch(t *testing.T) {
	s, d := newTestStrip()
	tab := s.AddTab("Geometry")
	hits := 0
	if _, err := s.AddWindowButton(tab, "Polygons", "open the polygon table", func(*Model) tea.Cmd {
		hits++
		return nil
	}); err != nil {
		t.Fatalf("add button: %v", err)
	}

	// the dispatch table, not the button, holds the behavior
	if !d.Has(tab, "window_polygons") {
		t.Fatalf("handler must be registered in the dispatch table")
	}
	s.TriggerSelected(&Model{}, 0)
	if hits != 1 {
		t.Fatalf("selected button activation must invoke the handler once, got %d", hits)
	}
}

func TestButtonReRegistrationReplacesHandler(t *testing.T) {
	s, _ := newTestStrip()
	tab := s.AddTab("Documents")
	old, fresh := 0, 0
	s.AddWindowButton(tab, "Library", "", func(*Model) tea.Cmd { old++; return nil })
	s.AddWindowButton(tab, "Library", "", func(*Model) tea.Cmd { fresh++; return nil })

	if got := len(s.Buttons(0)); got != 1 {
		t.Fatalf("re-adding the same label must not duplicate the button, got %d", got)
	}
	s.TriggerSelected(&Model{}, 0)
	if old != 0 || fresh != 1 {
		t.Fatalf("last registration must win: old=%d fresh=%d", old, fresh)
	}
}

func TestSelectionWrapsAcrossButtons(t *testing.T) {
	s, _ := newTestStrip()
	tab := s.AddTab("Astrology")
	s.AddPanelButton(tab, "Star Chart", "", func(*Model) tea.Cmd { return nil })
	s.AddWindowButton(tab, "Planets", "", func(*Model) tea.Cmd { return nil })

	s.MoveSelection(0, 1)
	if s.SelectedButton(0) != 1 {
		t.Fatalf("selection should advance")
	}
	s.MoveSelection(0, 1)
	if s.SelectedButton(0) != 0 {
		t.Fatalf("selection should wrap")
	}
	s.MoveSelection(0, -1)
	if s.SelectedButton(0) != 1 {
		t.Fatalf("selection should wrap backwards")
	}
}

func TestAccentKeyedByPillarTitle(t *testing.T) {
	s, _ := newTestStrip()
	if s.Accent("Numerology") == "" {
		t.Fatalf("known pillar must carry an accent color")
	}
	if s.Accent("Scratch") != "" {
		t.Fatalf("unknown titles carry no accent")
	}
}
