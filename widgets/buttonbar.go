package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ButtonItem is one launcher button in a tab's button bar.
type ButtonItem struct {
	Label   string
	Tooltip string
}

// ButtonBar renders a single row of buttons with the selected one
// highlighted, followed by the selected button's tooltip when it fits.
type ButtonBar struct {
	Buttons  []ButtonItem
	Selected int
	Accent   lipgloss.Color
}

func (b ButtonBar) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(b.Buttons) == 0 {
		return ""
	}
	accent := b.Accent
	if accent == "" {
		accent = lipgloss.Color("#89b4fa")
	}
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Padding(0, 1)
	active := lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(accent).Bold(true).Padding(0, 1)
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")).Italic(true)

	parts := make([]string, 0, len(b.Buttons))
	for i, btn := range b.Buttons {
		style := idle
		if i == b.Selected {
			style = active
		}
		parts = append(parts, style.Render("["+btn.Label+"]"))
	}
	row := strings.Join(parts, " ")
	if b.Selected >= 0 && b.Selected < len(b.Buttons) {
		if tip := b.Buttons[b.Selected].Tooltip; tip != "" {
			candidate := row + "  " + hint.Render(tip)
			if ansi.StringWidth(candidate) <= width {
				row = candidate
			}
		}
	}
	return padRight(ansi.Truncate(row, width, "…"), width)
}
