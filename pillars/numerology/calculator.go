package numerology

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	calcLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	calcValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9e2af"))
)

// Calculator scores a typed phrase against every cipher as the user types.
type Calculator struct {
	input   textinput.Model
	ciphers []Cipher
}

func NewCalculator() *Calculator {
	inp := textinput.New()
	inp.Placeholder = "phrase"
	inp.Prompt = "> "
	inp.Focus()
	return &Calculator{input: inp, ciphers: Ciphers()}
}

func (c *Calculator) Init() tea.Cmd { return textinput.Blink }

func (c *Calculator) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// Payload exposes the typed phrase so the host can hand it to the notes
// window.
func (c *Calculator) Payload() string { return c.input.Value() }

func (c *Calculator) MinSize() (int, int) { return 30, 8 }

func (c *Calculator) View(width, height int) string {
	var b strings.Builder
	b.WriteString(c.input.View())
	b.WriteString("\n\n")
	phrase := c.input.Value()
	for _, ci := range c.ciphers {
		sum := ci.Sum(phrase)
		line := fmt.Sprintf("%s %s  %s",
			calcLabelStyle.Render(fmt.Sprintf("%-16s", ci.Name)),
			calcValueStyle.Render(fmt.Sprintf("%4d", sum)),
			calcLabelStyle.Render(fmt.Sprintf("(%d)", ReduceNumber(sum))))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
