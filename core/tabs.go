package core

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"arcanum/widgets"
)

// ErrTabNotFound signals caller misuse: a tab must exist before buttons are
// added to it.
var ErrTabNotFound = errors.New("tab not found")

// ButtonKind distinguishes what a button launches. It prefixes the derived
// button identifier so a "Notes" panel button and a "Notes" window button
// never collide.
type ButtonKind int

const (
	ButtonPanel ButtonKind = iota
	ButtonWindow
)

func (k ButtonKind) prefix() string {
	if k == ButtonWindow {
		return "window_"
	}
	return "panel_"
}

// TabButton is one launcher button in a tab's bar.
type TabButton struct {
	ID      string
	Label   string
	Tooltip string
	Kind    ButtonKind
}

type stripTab struct {
	id       string
	index    int
	title    string
	buttons  []TabButton
	byID     map[string]int
	selected int
}

// TabStrip is the permanent, non-reorderable set of top-level tabs. Tab
// indices are stable once assigned; tabs are never removed.
type TabStrip struct {
	tabs     []*stripTab
	index    map[string]int
	dispatch *Dispatch
	accents  map[string]lipgloss.Color
}

func NewTabStrip(dispatch *Dispatch, accents map[string]lipgloss.Color) *TabStrip {
	return &TabStrip{
		index:    make(map[string]int),
		dispatch: dispatch,
		accents:  accents,
	}
}

// AddTab appends a fixed tab with an empty button bar and returns its id,
// which is derived deterministically from its position.
func (s *TabStrip) AddTab(title string) string {
	id := synthTabID(len(s.tabs))
	tab := &stripTab{
		id:    id,
		index: len(s.tabs),
		title: title,
		byID:  make(map[string]int),
	}
	s.tabs = append(s.tabs, tab)
	s.index[id] = tab.index
	return id
}

// AddPanelButton inserts a panel-launching button into the named tab and
// registers handler in the dispatch table under the derived identifier.
func (s *TabStrip) AddPanelButton(tabID, label, tooltip string, handler ButtonHandler) (string, error) {
	return s.addButton(tabID, label, tooltip, ButtonPanel, handler)
}

// AddWindowButton is AddPanelButton's window-kind twin.
func (s *TabStrip) AddWindowButton(tabID, label, tooltip string, handler ButtonHandler) (string, error) {
	return s.addButton(tabID, label, tooltip, ButtonWindow, handler)
}

func (s *TabStrip) addButton(tabID, label, tooltip string, kind ButtonKind, handler ButtonHandler) (string, error) {
	idx, ok := s.index[tabID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTabNotFound, tabID)
	}
	tab := s.tabs[idx]
	buttonID := NormalizeButtonID(kind, label)
	if pos, exists := tab.byID[buttonID]; exists {
		tab.buttons[pos] = TabButton{ID: buttonID, Label: label, Tooltip: tooltip, Kind: kind}
	} else {
		tab.byID[buttonID] = len(tab.buttons)
		tab.buttons = append(tab.buttons, TabButton{ID: buttonID, Label: label, Tooltip: tooltip, Kind: kind})
	}
	// activation goes through the dispatch table, never straight to the
	// handler: a button can exist before its behavior is wired
	s.dispatch.Register(tabID, buttonID, handler)
	return buttonID, nil
}

// NormalizeButtonID derives the dispatch identifier from a human label:
// lowercased, spaces to underscores, prefixed by kind.
func NormalizeButtonID(kind ButtonKind, label string) string {
	id := strings.ToLower(strings.TrimSpace(label))
	id = strings.ReplaceAll(id, " ", "_")
	return kind.prefix() + id
}

// TabID returns the id recorded for index, synthesizing and registering ids
// up to index for tabs created outside AddTab.
func (s *TabStrip) TabID(index int) string {
	if index < 0 {
		return ""
	}
	for len(s.tabs) <= index {
		s.AddTab(fmt.Sprintf("Tab %d", len(s.tabs)+1))
	}
	return s.tabs[index].id
}

// TabIndex is the reverse lookup of TabID.
func (s *TabStrip) TabIndex(id string) (int, bool) {
	idx, ok := s.index[id]
	return idx, ok
}

func (s *TabStrip) Len() int {
	return len(s.tabs)
}

func (s *TabStrip) Title(index int) string {
	if index < 0 || index >= len(s.tabs) {
		return ""
	}
	return s.tabs[index].title
}

// Accent returns the accent color for a tab title, or "" when the title is
// not a known pillar.
func (s *TabStrip) Accent(title string) lipgloss.Color {
	if c, ok := s.accents[title]; ok {
		return c
	}
	return ""
}

// Buttons returns the button bar of the tab at index for rendering.
func (s *TabStrip) Buttons(index int) []widgets.ButtonItem {
	if index < 0 || index >= len(s.tabs) {
		return nil
	}
	tab := s.tabs[index]
	out := make([]widgets.ButtonItem, 0, len(tab.buttons))
	for _, b := range tab.buttons {
		out = append(out, widgets.ButtonItem{Label: b.Label, Tooltip: b.Tooltip})
	}
	return out
}

// SelectedButton returns the index of the highlighted button on the tab.
func (s *TabStrip) SelectedButton(index int) int {
	if index < 0 || index >= len(s.tabs) {
		return 0
	}
	return s.tabs[index].selected
}

// MoveSelection shifts the highlighted button on the tab by delta, wrapping.
func (s *TabStrip) MoveSelection(index, delta int) {
	if index < 0 || index >= len(s.tabs) {
		return
	}
	tab := s.tabs[index]
	if len(tab.buttons) == 0 {
		return
	}
	tab.selected = (tab.selected + delta + len(tab.buttons)) % len(tab.buttons)
}

// TriggerSelected dispatches the highlighted button of the tab at index
// through the dispatch table.
func (s *TabStrip) TriggerSelected(m *Model, index int) tea.Cmd {
	if index < 0 || index >= len(s.tabs) {
		return nil
	}
	tab := s.tabs[index]
	if tab.selected < 0 || tab.selected >= len(tab.buttons) {
		return nil
	}
	return s.dispatch.Trigger(m, tab.id, tab.buttons[tab.selected].ID)
}

func synthTabID(index int) string {
	return fmt.Sprintf("tab%d", index)
}
