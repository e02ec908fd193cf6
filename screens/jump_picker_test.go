package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"arcanum/core"
)

func sampleRefs() []core.SurfaceRef {
	return []core.SurfaceRef{
		{Key: "numer.calc", Kind: core.KindPanel, Title: "Calculator"},
		{Key: "astro.chart", Kind: core.KindWindow, Title: "Star Chart"},
		{Key: "docs.library", Kind: core.KindWindow, Title: "Library"},
	}
}

func typeQuery(t *testing.T, p *JumpPicker, q string) {
	t.Helper()
	for _, r := range q {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestJumpPickerSubstringHitRanksFirst(t *testing.T) {
	p := NewJumpPicker(sampleRefs())
	typeQuery(t, p, "chart")
	if len(p.filtered) == 0 {
		t.Fatalf("expected a match for %q", "chart")
	}
	if p.filtered[0].Key != "astro.chart" {
		t.Fatalf("substring hit must rank first, got %q", p.filtered[0].Key)
	}
}

func TestJumpPickerEnterEmitsJumpMsg(t *testing.T) {
	p := NewJumpPicker(sampleRefs())
	_, cmd, closed := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !closed {
		t.Fatalf("enter must close the picker")
	}
	if cmd == nil {
		t.Fatalf("enter on a selection must emit a command")
	}
	msg, ok := cmd().(core.JumpToSurfaceMsg)
	if !ok || msg.Key != "numer.calc" {
		t.Fatalf("expected jump to first ref, got %#v", msg)
	}
}

func TestJumpPickerEscCloses(t *testing.T) {
	p := NewJumpPicker(nil)
	_, cmd, closed := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !closed || cmd != nil {
		t.Fatalf("esc must close without side effects")
	}
}

func TestJumpPickerCursorStaysInRange(t *testing.T) {
	p := NewJumpPicker(sampleRefs())
	for i := 0; i < 10; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if p.cursor != len(p.filtered)-1 {
		t.Fatalf("cursor overflow: %d", p.cursor)
	}
	typeQuery(t, p, "zzzzzz")
	if p.cursor != 0 && len(p.filtered) == 0 {
		t.Fatalf("cursor must clamp when the list empties")
	}
}
