package core

import tea "github.com/charmbracelet/bubbletea"

// ButtonHandler is the behavior behind one tab button. Handlers receive the
// model so they can open surfaces through the window manager.
type ButtonHandler func(m *Model) tea.Cmd

type dispatchKey struct {
	tab    string
	button string
}

// Dispatch decouples the tab strip (which only knows button identity) from
// pillar behavior (which supplies the handler). Buttons may be declared
// before their behavior is wired: triggering an unregistered pair is a
// silent no-op, and re-registering a pair overwrites the old handler.
type Dispatch struct {
	handlers map[dispatchKey]ButtonHandler
}

func NewDispatch() *Dispatch {
	return &Dispatch{handlers: make(map[dispatchKey]ButtonHandler)}
}

// Register binds handler to (tabID, buttonID). Last write wins.
func (d *Dispatch) Register(tabID, buttonID string, handler ButtonHandler) {
	if handler == nil {
		return
	}
	d.handlers[dispatchKey{tab: tabID, button: buttonID}] = handler
}

// Trigger looks up and invokes the handler for (tabID, buttonID).
// Unregistered pairs yield nil.
func (d *Dispatch) Trigger(m *Model, tabID, buttonID string) tea.Cmd {
	handler, ok := d.handlers[dispatchKey{tab: tabID, button: buttonID}]
	if !ok {
		return nil
	}
	return handler(m)
}

// Has reports whether a handler is registered for the pair.
func (d *Dispatch) Has(tabID, buttonID string) bool {
	_, ok := d.handlers[dispatchKey{tab: tabID, button: buttonID}]
	return ok
}
