package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"arcanum/widgets"
)

const (
	dockSideWidth    = 32
	dockBottomHeight = 9
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := m.renderHeader()
	bar := m.renderButtonBar()
	status := m.renderStatusBar()
	footer := m.renderFooter()

	bodyHeight := max(0, m.height-4)
	body := m.renderBody(max(1, m.width), bodyHeight)
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, m.height-8)), max(1, m.width), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	view := strings.Join([]string{header, bar, body, status, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, m.strip.Len())
	for i := 0; i < m.strip.Len(); i++ {
		title := m.strip.Title(i)
		label := fmt.Sprintf("%d:%s", i+1, title)
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle(m.strip.Accent(title)).Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render(m.opts.AppName)
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func (m Model) renderButtonBar() string {
	title := m.strip.Title(m.activeTab)
	bar := widgets.ButtonBar{
		Buttons:  m.strip.Buttons(m.activeTab),
		Selected: m.strip.SelectedButton(m.activeTab),
		Accent:   m.strip.Accent(title),
	}
	out := bar.Render(max(1, m.width), 1)
	if out == "" {
		out = strings.Repeat(" ", max(1, m.width))
	}
	return out
}

// renderBody composites the dock layout, then the floating surfaces in draw
// order, so the frontmost surface wins overlapping cells.
func (m Model) renderBody(width, height int) string {
	if height <= 0 {
		return ""
	}
	base := m.renderDocked(width, height)
	focusKey, _ := m.wm.Focused()
	for _, ref := range m.wm.FloatingOrder() {
		s := m.surfaceFor(ref)
		if s == nil {
			continue
		}
		g := clampInto(s.Geometry(), width, height)
		frame := widgets.Frame{
			Title:    s.Title(),
			Content:  contentView(s, g.W-4, g.H-2),
			Focused:  m.surfaceFocus && ref.Key == focusKey,
			Floating: true,
			Accent:   m.strip.Accent(m.strip.Title(m.activeTab)),
		}
		base = widgets.OverlayAt(base, frame.Render(g.W, g.H), g.X, g.Y, width, height)
	}
	return base
}

func (m Model) renderDocked(width, height int) string {
	left := m.wm.DockedPanels(DockLeft)
	right := m.wm.DockedPanels(DockRight)
	bottom := m.wm.DockedPanels(DockBottom)

	topHeight := height
	if len(bottom) > 0 && height > dockBottomHeight+3 {
		topHeight = height - dockBottomHeight
	}

	sideCols := 0
	if len(left) > 0 {
		sideCols++
	}
	if len(right) > 0 {
		sideCols++
	}
	cols := make([]widgets.Widget, 0, 3)
	ratios := make([]float64, 0, 3)
	sideRatio := float64(dockSideWidth) / float64(max(width, dockSideWidth+1))
	if len(left) > 0 {
		cols = append(cols, m.dockColumn(left))
		ratios = append(ratios, sideRatio)
	}
	cols = append(cols, widgets.Fill{})
	ratios = append(ratios, 1.0-sideRatio*float64(sideCols))
	if len(right) > 0 {
		cols = append(cols, m.dockColumn(right))
		ratios = append(ratios, sideRatio)
	}
	top := widgets.HStack{Widgets: cols, Ratios: ratios}.Render(width, topHeight)

	if len(bottom) == 0 || topHeight == height {
		return top
	}
	bottomRow := widgets.HStack{Widgets: m.dockWidgets(bottom)}.Render(width, height-topHeight)
	return top + "\n" + bottomRow
}

func (m Model) dockColumn(panels []*Panel) widgets.Widget {
	return widgets.VStack{Widgets: m.dockWidgets(panels)}
}

func (m Model) dockWidgets(panels []*Panel) []widgets.Widget {
	focusKey, _ := m.wm.Focused()
	out := make([]widgets.Widget, 0, len(panels))
	for _, p := range panels {
		out = append(out, dockedFrame{panel: p, focused: m.surfaceFocus && p == m.panelFor(focusKey)})
	}
	return out
}

func (m Model) panelFor(key string) *Panel {
	p, _ := m.wm.Panel(key)
	return p
}

func (m Model) surfaceFor(ref SurfaceRef) *Surface {
	if ref.Kind == KindPanel {
		if p, ok := m.wm.Panel(ref.Key); ok {
			return &p.Surface
		}
		return nil
	}
	if w, ok := m.wm.Window(ref.Key); ok {
		return &w.Surface
	}
	return nil
}

// dockedFrame adapts a docked panel to the widget layout: the dock decides
// its box, the frame just fills it.
type dockedFrame struct {
	panel   *Panel
	focused bool
}

func (d dockedFrame) Render(width, height int) string {
	return widgets.Frame{
		Title:   d.panel.Title(),
		Content: contentView(&d.panel.Surface, width-4, height-2),
		Focused: d.focused,
	}.Render(width, height)
}

func contentView(s *Surface, width, height int) string {
	c := s.Content()
	if c == nil {
		return ""
	}
	return c.View(max(1, width), max(1, height))
}

func (m Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func (m Model) renderFooter() string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
