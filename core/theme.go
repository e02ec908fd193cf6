package core

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

// DefaultAccents maps pillar titles to their tab accent colors. Tabs whose
// title is not listed here render with the neutral tab style.
func DefaultAccents() map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		"Numerology": "#f9e2af",
		"Astrology":  "#89b4fa",
		"Geometry":   "#a6e3a1",
		"Documents":  "#cba6f7",
	}
}
