package astrology

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Planet is one row of the reference table. No ephemeris; the table carries
// the classical correspondences only.
type Planet struct {
	Name   string
	Glyph  string
	Metal  string
	Day    string
	Number int
}

var planets = []Planet{
	{"Saturn", "♄", "lead", "Saturday", 3},
	{"Jupiter", "♃", "tin", "Thursday", 4},
	{"Mars", "♂", "iron", "Tuesday", 5},
	{"Sol", "☉", "gold", "Sunday", 6},
	{"Venus", "♀", "copper", "Friday", 7},
	{"Mercury", "☿", "quicksilver", "Wednesday", 8},
	{"Luna", "☽", "silver", "Monday", 9},
}

var (
	planetGlyphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	planetHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Underline(true)
	planetRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	planetSelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true).Background(lipgloss.Color("#313244"))
)

// PlanetTable is the reference window content: the seven classical planets
// and their correspondences.
type PlanetTable struct {
	cursor int
}

func NewPlanetTable() *PlanetTable { return &PlanetTable{} }

func (t *PlanetTable) Init() tea.Cmd { return nil }

func (t *PlanetTable) MinSize() (int, int) { return 46, len(planets) + 2 }

func (t *PlanetTable) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if t.cursor > 0 {
				t.cursor--
			}
		case "down", "j":
			if t.cursor < len(planets)-1 {
				t.cursor++
			}
		}
	}
	return nil
}

func (t *PlanetTable) View(width, height int) string {
	var b strings.Builder
	b.WriteString(planetHeaderStyle.Render(fmt.Sprintf("  %-9s %-12s %-10s %s", "planet", "metal", "day", "sphere")))
	b.WriteString("\n")
	for i, p := range planets {
		row := fmt.Sprintf("%s %-9s %-12s %-10s %d",
			planetGlyphStyle.Render(p.Glyph), p.Name, p.Metal, p.Day, p.Number)
		if i == t.cursor {
			b.WriteString(planetSelStyle.Render(row))
		} else {
			b.WriteString(planetRowStyle.Render(row))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
