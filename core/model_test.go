package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() (Model, *fakeStore) {
	store := newFakeStore()
	wm := NewWindowManager(store, nil)
	d := NewDispatch()
	strip := NewTabStrip(d, DefaultAccents())
	strip.AddTab("Numerology")
	strip.AddTab("Astrology")
	keys := NewKeyRegistry(DefaultBindings())
	m := NewModel(Options{AppName: "arcanum"}, strip, wm, keys, store, nil)
	return m, store
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDigitKeysSwitchTabs(t *testing.T) {
	m, _ := newTestModel()
	next, _ := m.Update(keyMsg("2"))
	if got := next.(Model).activeTab; got != 1 {
		t.Fatalf("expected tab 1 active, got %d", got)
	}
	// out-of-range digits are ignored
	next2, _ := next.Update(keyMsg("9"))
	if got := next2.(Model).activeTab; got != 1 {
		t.Fatalf("out-of-range digit must not move tabs, got %d", got)
	}
}

func TestQuitPersistsShellAndSurfaces(t *testing.T) {
	m, store := newTestModel()
	m.wm.OpenWindow("astro.chart", &stubContent{}, "Chart")
	m.activeTab = 1

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("quit must return a command")
	}
	if store.shell == nil || store.shell.ActiveTab != 1 {
		t.Fatalf("shell layout must be saved on quit: %+v", store.shell)
	}
	if _, ok := store.records[string(KindWindow)+"/astro.chart"]; !ok {
		t.Fatalf("live surfaces must be saved on quit")
	}
}

func TestRaiseRetryChecksLiveness(t *testing.T) {
	m, _ := newTestModel()
	w, _ := m.wm.OpenWindow("gone", &stubContent{}, "Gone")
	w.Close()
	// must not panic or resurrect the entry
	next, _ := m.Update(RaiseRetryMsg{Key: "gone"})
	if got := next.(Model).wm.WindowCount(); got != 0 {
		t.Fatalf("retry on a dead key must be a no-op, got %d windows", got)
	}
}

func TestRestoreShellAppliesSavedTab(t *testing.T) {
	m, store := newTestModel()
	store.shell = &ShellRecord{ActiveTab: 1}
	m.RestoreShell()
	if m.activeTab != 1 {
		t.Fatalf("restore must reapply the active tab")
	}
}

func TestSurfaceFocusRouting(t *testing.T) {
	m, _ := newTestModel()
	m.wm.OpenWindow("w", &stubContent{}, "W")
	m.wm.SetFocus("")
	m.surfaceFocus = false

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	nm := next.(Model)
	if !nm.surfaceFocus {
		t.Fatalf("tab must move focus into the surface layer")
	}
	next2, _ := nm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next2.(Model).surfaceFocus {
		t.Fatalf("esc must hand focus back to the strip")
	}
}
