// Package geometry hosts the polygon inspector.
package geometry

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Polygon describes one regular polygon.
type Polygon struct {
	Name  string
	Sides int
}

var polygons = []Polygon{
	{"Triangle", 3},
	{"Square", 4},
	{"Pentagon", 5},
	{"Hexagon", 6},
	{"Heptagon", 7},
	{"Octagon", 8},
	{"Enneagon", 9},
	{"Decagon", 10},
	{"Dodecagon", 12},
}

// InteriorAngle returns the interior angle of a regular n-gon in degrees.
func InteriorAngle(sides int) float64 {
	if sides < 3 {
		return 0
	}
	return float64(sides-2) * 180 / float64(sides)
}

// AngleSum returns the sum of interior angles of an n-gon in degrees.
func AngleSum(sides int) float64 {
	if sides < 3 {
		return 0
	}
	return float64(sides-2) * 180
}

var (
	polyHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Underline(true)
	polyRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	polySelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
)

// Inspector is the polygon inspector panel content: a scrollable table of
// regular polygons and their angle facts.
type Inspector struct {
	cursor int
}

func NewInspector() *Inspector { return &Inspector{} }

func (i *Inspector) Init() tea.Cmd { return nil }

func (i *Inspector) MinSize() (int, int) { return 36, 8 }

func (i *Inspector) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if i.cursor > 0 {
				i.cursor--
			}
		case "down", "j":
			if i.cursor < len(polygons)-1 {
				i.cursor++
			}
		}
	}
	return nil
}

func (i *Inspector) View(width, height int) string {
	var b strings.Builder
	b.WriteString(polyHeaderStyle.Render(fmt.Sprintf("%-11s %5s %8s %8s", "polygon", "sides", "angle", "sum")))
	b.WriteString("\n")
	// header row is fixed; scroll the rest
	visible := height - 1
	start := 0
	if visible > 0 && i.cursor >= visible {
		start = i.cursor - visible + 1
	}
	for idx := start; idx < len(polygons); idx++ {
		if visible > 0 && idx-start >= visible {
			break
		}
		p := polygons[idx]
		row := fmt.Sprintf("%-11s %5d %7.1f° %7.0f°",
			p.Name, p.Sides, InteriorAngle(p.Sides), AngleSum(p.Sides))
		if idx == i.cursor {
			b.WriteString(polySelStyle.Render(row))
		} else {
			b.WriteString(polyRowStyle.Render(row))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
