package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// RaiseRetryMsg is the deferred re-raise for a freshly opened surface: by the
// time it arrives the target may already be closed, so the handler re-checks
// liveness before acting.
type RaiseRetryMsg struct {
	Key string
}

// SurfaceClosedMsg is emitted once per key when that key's surface dies.
type SurfaceClosedMsg struct {
	Key string
}

type TabSwitchMsg struct {
	Index int
}

// JumpToSurfaceMsg asks the shell to raise and focus an open surface.
type JumpToSurfaceMsg struct {
	Key string
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
