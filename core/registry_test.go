package core

import (
	"errors"
	"testing"
)

type fakeStore struct {
	records map[string]StateRecord
	shell   *ShellRecord
	failOn  map[string]bool
	saves   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]StateRecord{}, failOn: map[string]bool{}}
}

func (f *fakeStore) Save(key string, rec StateRecord) error {
	if f.failOn[key] {
		return errors.New("store gone")
	}
	f.records[key] = rec
	f.saves = append(f.saves, key)
	return nil
}

func (f *fakeStore) Load(key string) (StateRecord, bool, error) {
	rec, ok := f.records[key]
	return rec, ok, nil
}

func (f *fakeStore) SaveShell(rec ShellRecord) error {
	f.shell = &rec
	return nil
}

func (f *fakeStore) LoadShell() (ShellRecord, bool, error) {
	if f.shell == nil {
		return ShellRecord{}, false, nil
	}
	return *f.shell, true, nil
}

func newTestManager() (*WindowManager, *fakeStore) {
	store := newFakeStore()
	return NewWindowManager(store, nil), store
}

func TestOpenWindowIsIdempotent(t *testing.T) {
	wm, _ := newTestManager()
	w1, _ := wm.OpenWindow("astro.chart", &stubContent{id: "a"}, "Chart")
	w2, _ := wm.OpenWindow("astro.chart", &stubContent{id: "b"}, "Chart")
	if w1 != w2 {
		t.Fatalf("same key must return the same live instance")
	}
	if wm.WindowCount() != 1 {
		t.Fatalf("expected one tracked window, got %d", wm.WindowCount())
	}
	if !w1.Visible() {
		t.Fatalf("open must leave the window visible")
	}
}

func TestOpenReplacesContentWithoutLeak(t *testing.T) {
	wm, _ := newTestManager()
	a := &stubContent{id: "a"}
	b := &stubContent{id: "b"}
	w, _ := wm.OpenWindow("notes", a, "Notes")
	wm.OpenWindow("notes", b, "Notes")
	if w.Content() != b {
		t.Fatalf("second open must install the new content")
	}
	if a.released != 1 {
		t.Fatalf("first content must be released, got %d", a.released)
	}
}

func TestKeyNeverInBothCollections(t *testing.T) {
	wm, _ := newTestManager()
	wm.CreatePanel("shared", "Panel", DockLeft)
	wm.CreateWindow("shared", "Window")
	_, inPanels := wm.Panel("shared")
	_, inWindows := wm.Window("shared")
	if inPanels && inWindows {
		t.Fatalf("key must not live in both collections")
	}
	if !inWindows {
		t.Fatalf("latest create must win the key")
	}
}

func TestCleanupOnDestroyNotifiesExactlyOnce(t *testing.T) {
	wm, _ := newTestManager()
	var closed []string
	wm.OnClosed(func(key string) { closed = append(closed, key) })

	w, _ := wm.OpenWindow("geo.poly", &stubContent{}, "Polygons")
	w.Close()
	w.Destroy() // platform path arriving after the explicit close

	if _, ok := wm.Window("geo.poly"); ok {
		t.Fatalf("lookup must report absent after destroy")
	}
	if len(closed) != 1 || closed[0] != "geo.poly" {
		t.Fatalf("expected exactly one notification for the key, got %v", closed)
	}
}

func TestStaleInstanceDiscardedOnCreate(t *testing.T) {
	wm, _ := newTestManager()
	w1 := wm.CreateWindow("stale", "Old")
	// simulate the platform tearing the window down without the
	// destruction callback having run yet
	w1.state = StateDestroyed

	w2 := wm.CreateWindow("stale", "New")
	if w1 == w2 {
		t.Fatalf("stale cached instance must not be returned")
	}
	if !w2.Alive() || wm.WindowCount() != 1 {
		t.Fatalf("fresh instance must replace the stale entry")
	}

	p1 := wm.CreatePanel("stale.panel", "Old", DockLeft)
	p1.state = StateDestroyed
	p2 := wm.CreatePanel("stale.panel", "New", DockLeft)
	if p1 == p2 {
		t.Fatalf("panels get the same staleness treatment as windows")
	}
}

func TestSaveStateRoundTrip(t *testing.T) {
	wm, store := newTestManager()
	w, _ := wm.OpenWindow("numer.calc", &stubContent{}, "Calculator")
	want := Geometry{X: 7, Y: 3, W: 60, H: 18}
	w.SetGeometry(want)
	w.Hide()
	wm.SaveState()

	// fresh process: same store, new manager, same key recreated
	wm2 := NewWindowManager(store, nil)
	w2 := wm2.CreateWindow("numer.calc", "Calculator")
	w2.Show()
	wm2.RestoreState()

	if got := w2.Geometry(); got != want {
		t.Fatalf("geometry not restored: got %+v want %+v", got, want)
	}
	if w2.Visible() {
		t.Fatalf("persisted visibility=false must be reapplied")
	}
}

func TestRestoreWithoutRecordKeepsDefaults(t *testing.T) {
	wm, _ := newTestManager()
	p := wm.CreatePanel("fresh", "Fresh", DockRight)
	before := p.Geometry()
	wm.RestoreState()
	if p.Geometry() != before {
		t.Fatalf("absent record must leave default placement untouched")
	}
}

func TestPanelFloatingFlagPersisted(t *testing.T) {
	wm, store := newTestManager()
	p, _ := wm.OpenPanelAt("docs.annot", &stubContent{}, "Annotations", DockBottom)
	p.SetFloating(true)
	wm.SaveState()

	wm2 := NewWindowManager(store, nil)
	p2 := wm2.CreatePanel("docs.annot", "Annotations", DockBottom)
	wm2.RestoreState()
	if !p2.Floating() {
		t.Fatalf("floating flag must survive the round trip")
	}
}

func TestSaveStatePartialFailureIsolation(t *testing.T) {
	wm, store := newTestManager()
	wm.OpenWindow("one", &stubContent{}, "One")
	wm.OpenWindow("two", &stubContent{}, "Two")
	wm.OpenWindow("three", &stubContent{}, "Three")
	store.failOn[string(KindWindow)+"/two"] = true

	wm.SaveState()

	if _, ok := store.records[string(KindWindow)+"/one"]; !ok {
		t.Fatalf("first entry must still be persisted")
	}
	if _, ok := store.records[string(KindWindow)+"/three"]; !ok {
		t.Fatalf("third entry must still be persisted")
	}
	if _, ok := wm.Window("two"); ok {
		t.Fatalf("unsaveable entry must be dropped from tracking")
	}
	if wm.WindowCount() != 2 {
		t.Fatalf("expected two tracked windows after the failed save, got %d", wm.WindowCount())
	}
}

func TestCloseAllClearsEverything(t *testing.T) {
	wm, _ := newTestManager()
	var closed []string
	wm.OnClosed(func(key string) { closed = append(closed, key) })
	wm.OpenPanelAt("p1", &stubContent{}, "P1", DockLeft)
	wm.OpenWindow("w1", &stubContent{}, "W1")

	wm.CloseAll()

	if wm.PanelCount() != 0 || wm.WindowCount() != 0 {
		t.Fatalf("collections must be empty after CloseAll")
	}
	if len(closed) != 2 {
		t.Fatalf("each key must be notified once, got %v", closed)
	}
	if len(wm.FloatingOrder()) != 0 {
		t.Fatalf("draw order must be cleared")
	}
}

func TestFocusCycleSkipsHiddenSurfaces(t *testing.T) {
	wm, _ := newTestManager()
	wm.OpenWindow("a", &stubContent{}, "A")
	w, _ := wm.OpenWindow("b", &stubContent{}, "B")
	w.Hide()

	first := wm.FocusNext()
	second := wm.FocusNext()
	if first != "a" || second != "a" {
		t.Fatalf("hidden surfaces must not take focus: %q then %q", first, second)
	}
}

func TestLookupsHaveNoSideEffects(t *testing.T) {
	wm, _ := newTestManager()
	if _, ok := wm.Panel("nope"); ok {
		t.Fatalf("unknown key must report absent")
	}
	if _, ok := wm.Window("nope"); ok {
		t.Fatalf("unknown key must report absent")
	}
	if wm.PanelCount() != 0 || wm.WindowCount() != 0 {
		t.Fatalf("lookups must not create entries")
	}
}
