// Package astrology hosts the star chart and the planet table.
package astrology

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	starStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
)

// StarChart paints a deterministic field of stars sized to its surface.
// The field is decorative; positions derive from cell coordinates so the
// chart is stable across redraws.
type StarChart struct{}

func NewStarChart() *StarChart { return &StarChart{} }

func (s *StarChart) Init() tea.Cmd              { return nil }
func (s *StarChart) Update(msg tea.Msg) tea.Cmd { return nil }
func (s *StarChart) MinSize() (int, int)        { return 28, 9 }

func (s *StarChart) View(width, height int) string {
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch hash(x, y) % 23 {
			case 0:
				b.WriteString(starStyle.Render("✦"))
			case 1:
				b.WriteString(faintStyle.Render("·"))
			case 2:
				b.WriteString(faintStyle.Render("˚"))
			default:
				b.WriteString(" ")
			}
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func hash(x, y int) uint32 {
	h := uint32(x)*2654435761 ^ uint32(y)*40503
	h ^= h >> 13
	return h * 2246822519
}
