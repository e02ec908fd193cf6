package core

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options is the explicit configuration handle the shell is built with;
// there is no ambient global lookup.
type Options struct {
	AppName    string
	InitialTab int
}

// Model is the shell: it owns the tab strip, the window manager and the
// modal screen stack, and routes every event between them.
type Model struct {
	width  int
	height int

	opts  Options
	strip *TabStrip
	wm    *WindowManager
	keys  *KeyRegistry
	store StateStore
	log   *zap.Logger

	screens      ScreenStack
	activeTab    int
	surfaceFocus bool
	status       string
	statusErr    bool
	quitting     bool

	// OpenJumpPicker is injected by the wiring layer so core stays free of
	// screen implementations.
	OpenJumpPicker func(m *Model) Screen
}

func NewModel(opts Options, strip *TabStrip, wm *WindowManager, keys *KeyRegistry, store StateStore, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		width:     100,
		height:    32,
		opts:      opts,
		strip:     strip,
		wm:        wm,
		keys:      keys,
		store:     store,
		log:       log,
		activeTab: opts.InitialTab,
		status:    "Ready",
	}
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	m.wm.ForEach(func(key string, s *Surface) {
		if c := s.Content(); c != nil {
			if cmd := c.Init(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	})
	return tea.Batch(cmds...)
}

func (m *Model) Windows() *WindowManager { return m.wm }
func (m *Model) Strip() *TabStrip        { return m.strip }
func (m *Model) ActiveTab() int          { return m.activeTab }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= m.strip.Len() {
		return
	}
	m.activeTab = index
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.surfaceFocus {
		return ScopeSurface
	}
	return ScopeStrip
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wm.ClampInto(max(1, m.width), max(1, m.bodyHeight()))
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil

	case RaiseRetryMsg:
		// deferred re-raise: the target may have died since it was queued
		if m.wm.Alive(msg.Key) {
			m.wm.Raise(msg.Key)
		}
		return m, nil

	case JumpToSurfaceMsg:
		if m.wm.Alive(msg.Key) {
			if s := m.wm.live(msg.Key); s != nil {
				s.Show()
			}
			m.wm.Raise(msg.Key)
			m.wm.SetFocus(msg.Key)
			m.surfaceFocus = true
			m.SetStatus("Jumped to " + msg.Key)
		}
		return m, nil

	case SurfaceClosedMsg:
		m.SetStatus("Closed " + msg.Key)
		return m, nil

	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil

	case PopScreenMsg:
		m.screens.Pop()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, m.forwardToContents(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top := m.screens.Top(); top != nil {
		next, cmd, closed := top.Update(msg)
		if closed {
			m.screens.Pop()
		} else if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		return m, cmd
	}

	scope := m.ActiveScope()

	if m.keys.IsAction(msg, ActionJumpPicker, scope) && m.OpenJumpPicker != nil {
		m.screens.Push(m.OpenJumpPicker(&m))
		return m, nil
	}
	if m.keys.IsAction(msg, ActionCycleFocus, scope) {
		key := m.wm.FocusNext()
		m.surfaceFocus = key != ""
		if key != "" {
			m.SetStatus("Focused " + key)
		}
		return m, nil
	}

	if m.surfaceFocus {
		return m.updateSurfaceKey(msg, scope)
	}
	return m.updateStripKey(msg, scope)
}

func (m Model) updateStripKey(msg tea.KeyMsg, scope string) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsAction(msg, ActionQuit, scope):
		return m.saveAndQuit()
	case m.keys.IsAction(msg, ActionNextTab, scope):
		m.SwitchTab((m.activeTab + 1) % max(1, m.strip.Len()))
		return m, nil
	case m.keys.IsAction(msg, ActionPrevTab, scope):
		n := max(1, m.strip.Len())
		m.SwitchTab((m.activeTab - 1 + n) % n)
		return m, nil
	case m.keys.IsAction(msg, ActionNextButton, scope):
		m.strip.MoveSelection(m.activeTab, 1)
		return m, nil
	case m.keys.IsAction(msg, ActionPrevButton, scope):
		m.strip.MoveSelection(m.activeTab, -1)
		return m, nil
	case m.keys.IsAction(msg, ActionActivate, scope):
		cmd := m.strip.TriggerSelected(&m, m.activeTab)
		if _, s := m.wm.Focused(); s != nil {
			m.surfaceFocus = true
		}
		return m, cmd
	}

	// number keys address tabs directly
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= m.strip.Len() {
		m.SwitchTab(n - 1)
		return m, nil
	}
	return m, nil
}

func (m Model) updateSurfaceKey(msg tea.KeyMsg, scope string) (tea.Model, tea.Cmd) {
	key, s := m.wm.Focused()
	if s == nil {
		m.surfaceFocus = false
		return m, nil
	}

	switch {
	case m.keys.IsAction(msg, ActionUnfocus, scope):
		m.wm.SetFocus("")
		m.surfaceFocus = false
		return m, nil

	case m.keys.IsAction(msg, ActionCloseSurface, scope):
		s.Close() // destruction callback cleans the registry
		m.surfaceFocus = false
		return m, func() tea.Msg { return SurfaceClosedMsg{Key: key} }

	case m.keys.IsAction(msg, ActionToggleFloat, scope):
		if p, ok := m.wm.Panel(key); ok {
			p.SetFloating(!p.Floating())
			if p.Floating() {
				m.SetStatus("Floating " + key)
			} else {
				m.SetStatus("Docked " + key)
			}
		}
		return m, nil
	}

	if moved := m.moveOrResize(msg, s); moved {
		m.wm.ClampInto(max(1, m.width), max(1, m.bodyHeight()))
		return m, nil
	}

	if c := s.Content(); c != nil {
		return m, c.Update(msg)
	}
	return m, nil
}

// moveOrResize handles placement keys for the focused surface. Docked panels
// ignore these; their placement belongs to the dock layout.
func (m *Model) moveOrResize(msg tea.KeyMsg, s *Surface) bool {
	if p, ok := m.wm.Panel(m.wm.focus); ok && !p.Floating() {
		return false
	}
	switch msg.String() {
	case "shift+left":
		s.MoveBy(-2, 0)
	case "shift+right":
		s.MoveBy(2, 0)
	case "shift+up":
		s.MoveBy(0, -1)
	case "shift+down":
		s.MoveBy(0, 1)
	case "ctrl+left":
		s.Resize(s.Geometry().W-2, s.Geometry().H)
	case "ctrl+right":
		s.Resize(s.Geometry().W+2, s.Geometry().H)
	case "ctrl+up":
		s.Resize(s.Geometry().W, s.Geometry().H-1)
	case "ctrl+down":
		s.Resize(s.Geometry().W, s.Geometry().H+1)
	default:
		return false
	}
	return true
}

func (m Model) saveAndQuit() (tea.Model, tea.Cmd) {
	m.wm.SaveState()
	if err := m.store.SaveShell(ShellRecord{ActiveTab: m.activeTab, Width: m.width, Height: m.height}); err != nil {
		m.log.Warn("shell state save failed", zap.Error(err))
	}
	m.quitting = true
	return m, tea.Quit
}

// RestoreShell reapplies the persisted shell layout; absence keeps defaults.
func (m *Model) RestoreShell() {
	rec, found, err := m.store.LoadShell()
	if err != nil {
		m.log.Warn("shell state load failed", zap.Error(err))
		return
	}
	if !found {
		return
	}
	m.SwitchTab(rec.ActiveTab)
}

func (m Model) forwardToContents(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	m.wm.ForEach(func(key string, s *Surface) {
		if c := s.Content(); c != nil {
			if cmd := c.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	})
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) bodyHeight() int {
	// header, button bar, status, footer each take one row
	return m.height - 4
}
