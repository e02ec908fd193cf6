package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Content is what pillar modules hand to the window manager: a ready-to-host
// element that draws into whatever box its surface currently has.
type Content interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// MinSizer is an optional Content capability declaring a minimum visible size.
// Surfaces that receive content without one are grown to a fallback minimum.
type MinSizer interface {
	MinSize() (width, height int)
}

// Releaser is an optional Content capability. Release is called exactly once
// when the content is detached from its surface, either by replacement or by
// surface teardown.
type Releaser interface {
	Release()
}

// Payloader is an optional Content capability: the host calls Payload when it
// needs a snapshot of the user-entered content (pillar-specific shape).
type Payloader interface {
	Payload() string
}

// SurfaceState is the lifecycle of one surface. Destroyed is terminal.
type SurfaceState int

const (
	StateCreated SurfaceState = iota
	StateShown
	StateHidden
	StateDestroyed
)

func (s SurfaceState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateShown:
		return "shown"
	case StateHidden:
		return "hidden"
	case StateDestroyed:
		return "destroyed"
	default:
		return "invalid"
	}
}

const (
	fallbackMinW = 24
	fallbackMinH = 6
)

// Surface is the shared half of Panel and AuxWindow: it owns at most one
// content element at a time and its identity lives in the window manager,
// not here.
type Surface struct {
	title   string
	content Content
	geom    Geometry
	state   SurfaceState
	onClose func() // installed by the window manager; fired at most once
}

func (s *Surface) Title() string       { return s.title }
func (s *Surface) SetTitle(t string)   { s.title = t }
func (s *Surface) Content() Content    { return s.content }
func (s *Surface) Geometry() Geometry  { return s.geom }
func (s *Surface) State() SurfaceState { return s.state }
func (s *Surface) Alive() bool         { return s.state != StateDestroyed }
func (s *Surface) Visible() bool       { return s.state == StateShown }

// SetContent swaps the hosted element: the previous content is detached and
// released before the new one is attached, so the surface never holds two
// elements and never silently drops one. Returns the new content's Init
// command, or nil if the surface is already destroyed.
func (s *Surface) SetContent(c Content) tea.Cmd {
	if s.state == StateDestroyed {
		return nil
	}
	s.releaseContent()
	s.content = c
	if c == nil {
		return nil
	}
	minW, minH := fallbackMinW, fallbackMinH
	if ms, ok := c.(MinSizer); ok {
		if w, h := ms.MinSize(); w > 0 && h > 0 {
			minW, minH = w, h
		}
	}
	if s.geom.W < minW {
		s.geom.W = minW
	}
	if s.geom.H < minH {
		s.geom.H = minH
	}
	return c.Init()
}

func (s *Surface) releaseContent() {
	if s.content == nil {
		return
	}
	prev := s.content
	s.content = nil
	if r, ok := prev.(Releaser); ok {
		r.Release()
	}
}

func (s *Surface) Show() {
	if s.state == StateDestroyed {
		return
	}
	s.state = StateShown
}

func (s *Surface) Hide() {
	if s.state == StateDestroyed {
		return
	}
	s.state = StateHidden
}

// Close tears the surface down. Idempotent: the first call releases the
// content, enters the terminal state and fires the manager's destruction
// callback; later calls are no-ops, so an explicit Close racing the shell's
// own teardown never double-notifies.
func (s *Surface) Close() {
	if s.state == StateDestroyed {
		return
	}
	s.releaseContent()
	s.state = StateDestroyed
	if s.onClose != nil {
		fn := s.onClose
		s.onClose = nil
		fn()
	}
}

// Destroy is out-of-band teardown: the shell (rather than registry code)
// killed the surface. Same terminal transition as Close; kept separate so
// call sites read as what actually happened.
func (s *Surface) Destroy() {
	s.Close()
}

func (s *Surface) SetGeometry(g Geometry) {
	if s.state == StateDestroyed || !g.Valid() {
		return
	}
	s.geom = g
}

func (s *Surface) Resize(w, h int) {
	if s.state == StateDestroyed || w <= 0 || h <= 0 {
		return
	}
	s.geom.W = w
	s.geom.H = h
}

func (s *Surface) MoveBy(dx, dy int) {
	if s.state == StateDestroyed {
		return
	}
	s.geom.X += dx
	s.geom.Y += dy
}

// Payload returns the hosted content's user-entered snapshot, if it offers one.
func (s *Surface) Payload() (string, bool) {
	if p, ok := s.content.(Payloader); ok {
		return p.Payload(), true
	}
	return "", false
}

// Panel is a dockable surface: attached to a shell dock area or floating free.
type Panel struct {
	Surface
	dock     DockArea
	floating bool
}

func (p *Panel) Dock() DockArea     { return p.dock }
func (p *Panel) SetDock(d DockArea) { p.dock = d }
func (p *Panel) Floating() bool     { return p.floating }
func (p *Panel) SetFloating(f bool) {
	if p.state == StateDestroyed {
		return
	}
	p.floating = f
}

// AuxWindow is a free-floating top-level surface, never docked.
type AuxWindow struct {
	Surface
}
