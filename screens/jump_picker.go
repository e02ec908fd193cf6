package screens

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"arcanum/core"
)

// JumpPicker is a fuzzy finder over every open surface. Typing narrows the
// list; enter raises and focuses the selection.
type JumpPicker struct {
	input    textinput.Model
	all      []core.SurfaceRef
	filtered []core.SurfaceRef
	cursor   int
}

func NewJumpPicker(refs []core.SurfaceRef) *JumpPicker {
	inp := textinput.New()
	inp.Placeholder = "surface"
	inp.Prompt = "> "
	inp.Focus()
	p := &JumpPicker{input: inp, all: refs}
	p.refilter()
	return p
}

func (p *JumpPicker) Title() string { return "Jump" }
func (p *JumpPicker) Scope() string { return core.ScopePicker }

func (p *JumpPicker) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return p, nil, true
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil, false
		case "down":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return p, nil, false
		case "enter":
			if p.cursor >= 0 && p.cursor < len(p.filtered) {
				key := p.filtered[p.cursor].Key
				return p, func() tea.Msg { return core.JumpToSurfaceMsg{Key: key} }, true
			}
			return p, nil, true
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.refilter()
	return p, cmd, false
}

// refilter ranks surfaces by edit distance to the query, with plain
// substring hits always ahead of fuzzy ones.
func (p *JumpPicker) refilter() {
	query := strings.ToLower(strings.TrimSpace(p.input.Value()))
	if query == "" {
		p.filtered = append([]core.SurfaceRef(nil), p.all...)
		p.clampCursor()
		return
	}
	type scored struct {
		ref       core.SurfaceRef
		substring bool
		distance  int
	}
	ranked := make([]scored, 0, len(p.all))
	for _, ref := range p.all {
		hay := strings.ToLower(ref.Title + " " + ref.Key)
		ranked = append(ranked, scored{
			ref:       ref,
			substring: strings.Contains(hay, query),
			distance:  levenshtein.ComputeDistance(query, strings.ToLower(ref.Title)),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].substring != ranked[j].substring {
			return ranked[i].substring
		}
		return ranked[i].distance < ranked[j].distance
	})
	p.filtered = p.filtered[:0]
	for _, s := range ranked {
		if s.substring || s.distance <= len(query)+2 {
			p.filtered = append(p.filtered, s.ref)
		}
	}
	p.clampCursor()
}

func (p *JumpPicker) clampCursor() {
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

var (
	jumpRowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	jumpSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	jumpKindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

func (p *JumpPicker) View(width, height int) string {
	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	if len(p.filtered) == 0 {
		b.WriteString(jumpKindStyle.Render("no open surfaces"))
		return b.String()
	}
	maxRows := max(1, height-4)
	for i, ref := range p.filtered {
		if i >= maxRows {
			break
		}
		kind := "panel"
		if ref.Kind == core.KindWindow {
			kind = "window"
		}
		line := ref.Title + " " + jumpKindStyle.Render("("+kind+" · "+ref.Key+")")
		if i == p.cursor {
			b.WriteString(jumpSelectedStyle.Render("▶ " + line))
		} else {
			b.WriteString(jumpRowStyle.Render("  " + line))
		}
		if i < len(p.filtered)-1 && i < maxRows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
