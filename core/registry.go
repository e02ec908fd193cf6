package core

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// SurfaceKind doubles as the persisted-state key namespace.
type SurfaceKind string

const (
	KindPanel  SurfaceKind = "panels"
	KindWindow SurfaceKind = "auxiliaryWindows"
)

// StateRecord is the persisted placement of one surface. Floating is only
// meaningful for panels; windows always persist it as true.
type StateRecord struct {
	Geometry Geometry
	Visible  bool
	Floating bool
}

// ShellRecord is the main shell's own layout snapshot.
type ShellRecord struct {
	ActiveTab int
	Width     int
	Height    int
}

// StateStore persists window state across runs. Absence of a record is not
// an error: Load reports found=false and the surface keeps its defaults.
type StateStore interface {
	Save(key string, rec StateRecord) error
	Load(key string) (StateRecord, bool, error)
	SaveShell(rec ShellRecord) error
	LoadShell() (ShellRecord, bool, error)
}

// SurfaceRef identifies one live surface for pickers and the render order.
type SurfaceRef struct {
	Key   string
	Kind  SurfaceKind
	Title string
}

const raiseRetryDelay = 80 * time.Millisecond

// WindowManager is the single authority over every panel and auxiliary
// window: it creates them on demand, keeps at most one live instance per
// key, and cleans up its bookkeeping when a surface dies through any path.
// All methods run on the bubbletea event loop; there is no locking here.
type WindowManager struct {
	panels  map[string]*Panel
	windows map[string]*AuxWindow
	zorder  []string // floating draw order, back to front
	focus   string   // key of the focused surface, "" when the strip has focus

	store    StateStore
	log      *zap.Logger
	onClosed []func(key string)

	cascade int // staggers default placement of fresh windows
}

func NewWindowManager(store StateStore, log *zap.Logger) *WindowManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &WindowManager{
		panels:  make(map[string]*Panel),
		windows: make(map[string]*AuxWindow),
		store:   store,
		log:     log,
	}
}

// OnClosed subscribes fn to closed-surface notifications. Exactly one
// notification is delivered per key, however the surface died.
func (wm *WindowManager) OnClosed(fn func(key string)) {
	if fn != nil {
		wm.onClosed = append(wm.onClosed, fn)
	}
}

// CreatePanel returns the live panel for key, creating it on first use.
// A destroyed instance still sitting in the table (its destruction callback
// lost or not yet run) is discarded rather than trusted.
func (wm *WindowManager) CreatePanel(key, title string, dock DockArea) *Panel {
	if p, ok := wm.panels[key]; ok {
		if p.Alive() {
			p.Show()
			wm.Raise(key)
			return p
		}
		wm.log.Warn("discarding stale panel", zap.String("key", key))
		wm.evict(key)
	}
	if w, ok := wm.windows[key]; ok {
		// a key never names both kinds; close the imposter so the
		// invariant holds before we book the panel
		wm.log.Error("key registered as window, rebinding as panel", zap.String("key", key))
		w.Close()
	}
	p := &Panel{dock: dock}
	p.title = title
	p.geom = wm.defaultPlacement()
	// a fresh instance inherits its previous placement, when one was saved
	if rec, found, err := wm.store.Load(string(KindPanel) + "/" + key); err == nil && found {
		p.geom = rec.Geometry
		p.floating = rec.Floating
	}
	p.onClose = func() { wm.surfaceClosed(key) }
	wm.panels[key] = p
	wm.zorder = append(wm.zorder, key)
	return p
}

// CreateWindow returns the live auxiliary window for key, creating it on
// first use, with the same stale-instance discard as CreatePanel.
func (wm *WindowManager) CreateWindow(key, title string) *AuxWindow {
	if w, ok := wm.windows[key]; ok {
		if w.Alive() {
			w.Show()
			wm.Raise(key)
			return w
		}
		wm.log.Warn("discarding stale window", zap.String("key", key))
		wm.evict(key)
	}
	if p, ok := wm.panels[key]; ok {
		wm.log.Error("key registered as panel, rebinding as window", zap.String("key", key))
		p.Close()
	}
	w := &AuxWindow{}
	w.title = title
	w.geom = wm.defaultPlacement()
	if rec, found, err := wm.store.Load(string(KindWindow) + "/" + key); err == nil && found {
		w.geom = rec.Geometry
	}
	w.onClose = func() { wm.surfaceClosed(key) }
	wm.windows[key] = w
	wm.zorder = append(wm.zorder, key)
	return w
}

// OpenPanel is the entry point pillar code uses: create-or-reuse, install
// content, show, raise. The returned command is the content's Init.
func (wm *WindowManager) OpenPanel(key string, c Content, title string) (*Panel, tea.Cmd) {
	p := wm.CreatePanel(key, title, DockRight)
	p.SetTitle(title)
	cmd := p.SetContent(c)
	p.Show()
	wm.Raise(key)
	wm.focus = key
	return p, tea.Batch(cmd, wm.RaiseSoon(key))
}

// OpenPanelAt is OpenPanel with an explicit dock area for first creation.
func (wm *WindowManager) OpenPanelAt(key string, c Content, title string, dock DockArea) (*Panel, tea.Cmd) {
	p := wm.CreatePanel(key, title, dock)
	p.SetTitle(title)
	cmd := p.SetContent(c)
	p.Show()
	wm.Raise(key)
	wm.focus = key
	return p, tea.Batch(cmd, wm.RaiseSoon(key))
}

// OpenWindow is OpenPanel's window-kind twin, with an optional explicit size.
func (wm *WindowManager) OpenWindow(key string, c Content, title string, size ...Size) (*AuxWindow, tea.Cmd) {
	w := wm.CreateWindow(key, title)
	w.SetTitle(title)
	cmd := w.SetContent(c)
	if len(size) > 0 && size[0].W > 0 && size[0].H > 0 {
		// explicit size is a default, not an override of a saved placement
		if _, found, err := wm.store.Load(string(KindWindow) + "/" + key); err != nil || !found {
			w.Resize(size[0].W, size[0].H)
		}
	}
	w.Show()
	wm.Raise(key)
	wm.focus = key
	return w, tea.Batch(cmd, wm.RaiseSoon(key))
}

// Panel is a pure lookup, no side effects.
func (wm *WindowManager) Panel(key string) (*Panel, bool) {
	p, ok := wm.panels[key]
	return p, ok
}

// Window is a pure lookup, no side effects.
func (wm *WindowManager) Window(key string) (*AuxWindow, bool) {
	w, ok := wm.windows[key]
	return w, ok
}

// SaveState persists every live entry. A failure on one entry drops that
// entry from tracking and moves on; one bad surface never aborts the rest.
func (wm *WindowManager) SaveState() {
	for key, p := range wm.panels {
		rec := StateRecord{Geometry: p.Geometry(), Visible: p.Visible(), Floating: p.Floating()}
		if err := wm.store.Save(string(KindPanel)+"/"+key, rec); err != nil {
			wm.log.Warn("dropping panel after failed save",
				zap.String("key", key), zap.Error(err))
			wm.evict(key)
		}
	}
	for key, w := range wm.windows {
		rec := StateRecord{Geometry: w.Geometry(), Visible: w.Visible(), Floating: true}
		if err := wm.store.Save(string(KindWindow)+"/"+key, rec); err != nil {
			wm.log.Warn("dropping window after failed save",
				zap.String("key", key), zap.Error(err))
			wm.evict(key)
		}
	}
}

// RestoreState reapplies persisted placement to every live entry. Entries
// without a record keep their defaults; store read errors are logged only.
func (wm *WindowManager) RestoreState() {
	for key, p := range wm.panels {
		rec, found, err := wm.store.Load(string(KindPanel) + "/" + key)
		if err != nil {
			wm.log.Warn("restore failed for panel", zap.String("key", key), zap.Error(err))
			continue
		}
		if !found {
			continue
		}
		p.SetGeometry(rec.Geometry)
		p.SetFloating(rec.Floating)
		applyVisibility(&p.Surface, rec.Visible)
	}
	for key, w := range wm.windows {
		rec, found, err := wm.store.Load(string(KindWindow) + "/" + key)
		if err != nil {
			wm.log.Warn("restore failed for window", zap.String("key", key), zap.Error(err))
			continue
		}
		if !found {
			continue
		}
		w.SetGeometry(rec.Geometry)
		applyVisibility(&w.Surface, rec.Visible)
	}
}

func applyVisibility(s *Surface, visible bool) {
	if visible {
		s.Show()
	} else {
		s.Hide()
	}
}

// CloseAll requests close on every live surface and then clears the tables
// unconditionally. Close is fire-and-forget; the destruction callbacks that
// fire along the way find their entries already gone and do nothing.
func (wm *WindowManager) CloseAll() {
	for _, p := range wm.panels {
		p.Close()
	}
	for _, w := range wm.windows {
		w.Close()
	}
	wm.panels = make(map[string]*Panel)
	wm.windows = make(map[string]*AuxWindow)
	wm.zorder = nil
	wm.focus = ""
}

// surfaceClosed is the destruction callback: remove bookkeeping for key and
// notify listeners. Safe to run after the key was already removed (the
// explicit-close / shell-destroy race): the second arrival is a no-op.
func (wm *WindowManager) surfaceClosed(key string) {
	found := false
	if _, ok := wm.panels[key]; ok {
		delete(wm.panels, key)
		found = true
	}
	if _, ok := wm.windows[key]; ok {
		delete(wm.windows, key)
		found = true
	}
	wm.dropZ(key)
	if wm.focus == key {
		wm.focus = ""
	}
	if !found {
		return
	}
	for _, fn := range wm.onClosed {
		fn(key)
	}
}

// Raise moves key to the front of the floating draw order.
func (wm *WindowManager) Raise(key string) {
	wm.dropZ(key)
	if wm.live(key) != nil {
		wm.zorder = append(wm.zorder, key)
	}
}

// RaiseSoon schedules a re-raise after pending UI events settle. The message
// handler must re-check liveness: the target may be gone by then.
func (wm *WindowManager) RaiseSoon(key string) tea.Cmd {
	return tea.Tick(raiseRetryDelay, func(time.Time) tea.Msg {
		return RaiseRetryMsg{Key: key}
	})
}

// Focused returns the focused surface, or nil when the strip has focus.
func (wm *WindowManager) Focused() (string, *Surface) {
	if wm.focus == "" {
		return "", nil
	}
	return wm.focus, wm.live(wm.focus)
}

func (wm *WindowManager) SetFocus(key string) {
	if key == "" || wm.live(key) != nil {
		wm.focus = key
	}
}

// FocusNext cycles focus through visible surfaces in draw order. Returns the
// newly focused key, or "" when nothing is focusable.
func (wm *WindowManager) FocusNext() string {
	visible := make([]string, 0, len(wm.zorder))
	for _, key := range wm.zorder {
		if s := wm.live(key); s != nil && s.Visible() {
			visible = append(visible, key)
		}
	}
	if len(visible) == 0 {
		wm.focus = ""
		return ""
	}
	next := visible[0]
	for i, key := range visible {
		if key == wm.focus {
			next = visible[(i+1)%len(visible)]
			break
		}
	}
	wm.focus = next
	wm.Raise(next)
	return next
}

// Surfaces lists every live surface, panels first, each kind sorted by key.
func (wm *WindowManager) Surfaces() []SurfaceRef {
	out := make([]SurfaceRef, 0, len(wm.panels)+len(wm.windows))
	for key, p := range wm.panels {
		out = append(out, SurfaceRef{Key: key, Kind: KindPanel, Title: p.Title()})
	}
	for key, w := range wm.windows {
		out = append(out, SurfaceRef{Key: key, Kind: KindWindow, Title: w.Title()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == KindPanel
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// FloatingOrder returns the draw order of visible floating surfaces.
func (wm *WindowManager) FloatingOrder() []SurfaceRef {
	out := make([]SurfaceRef, 0, len(wm.zorder))
	for _, key := range wm.zorder {
		if p, ok := wm.panels[key]; ok && p.Visible() && p.Floating() {
			out = append(out, SurfaceRef{Key: key, Kind: KindPanel, Title: p.Title()})
			continue
		}
		if w, ok := wm.windows[key]; ok && w.Visible() {
			out = append(out, SurfaceRef{Key: key, Kind: KindWindow, Title: w.Title()})
		}
	}
	return out
}

// DockedPanels returns visible non-floating panels for one dock area,
// ordered by key so the layout is stable between frames.
func (wm *WindowManager) DockedPanels(area DockArea) []*Panel {
	keys := make([]string, 0, len(wm.panels))
	for key, p := range wm.panels {
		if p.Visible() && !p.Floating() && p.Dock() == area {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	out := make([]*Panel, 0, len(keys))
	for _, key := range keys {
		out = append(out, wm.panels[key])
	}
	return out
}

func (wm *WindowManager) PanelCount() int  { return len(wm.panels) }
func (wm *WindowManager) WindowCount() int { return len(wm.windows) }

// ClampInto keeps every floating geometry inside the canvas after a resize.
func (wm *WindowManager) ClampInto(width, height int) {
	for _, p := range wm.panels {
		if p.Floating() {
			p.SetGeometry(clampInto(p.Geometry(), width, height))
		}
	}
	for _, w := range wm.windows {
		w.SetGeometry(clampInto(w.Geometry(), width, height))
	}
}

// Alive reports whether key names a live surface in either table.
func (wm *WindowManager) Alive(key string) bool {
	return wm.live(key) != nil
}

// ForEach visits every live surface; iteration order is unspecified.
func (wm *WindowManager) ForEach(fn func(key string, s *Surface)) {
	for key, p := range wm.panels {
		if p.Alive() {
			fn(key, &p.Surface)
		}
	}
	for key, w := range wm.windows {
		if w.Alive() {
			fn(key, &w.Surface)
		}
	}
}

// live resolves key to its surface in whichever table holds it.
func (wm *WindowManager) live(key string) *Surface {
	if p, ok := wm.panels[key]; ok && p.Alive() {
		return &p.Surface
	}
	if w, ok := wm.windows[key]; ok && w.Alive() {
		return &w.Surface
	}
	return nil
}

// evict silently removes a stale entry without notifying listeners: the
// surface it named is already dead and its closed event either fired or
// was lost with it.
func (wm *WindowManager) evict(key string) {
	delete(wm.panels, key)
	delete(wm.windows, key)
	wm.dropZ(key)
	if wm.focus == key {
		wm.focus = ""
	}
}

func (wm *WindowManager) dropZ(key string) {
	for i, k := range wm.zorder {
		if k == key {
			wm.zorder = append(wm.zorder[:i], wm.zorder[i+1:]...)
			return
		}
	}
}

func (wm *WindowManager) defaultPlacement() Geometry {
	g := Geometry{X: 4 + wm.cascade*2, Y: 2 + wm.cascade, W: 44, H: 12}
	wm.cascade = (wm.cascade + 1) % 8
	return g
}
