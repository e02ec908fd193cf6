package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Frame draws the chrome around a surface: a rounded border with the title
// worked into the top edge. Unlike a flow widget it always fills the full
// width x height box it is given, so floating surfaces composite cleanly.
type Frame struct {
	Title    string
	Content  string
	Focused  bool
	Floating bool
	Accent   lipgloss.Color
}

func (f Frame) Render(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := lipgloss.Color("#6c7086")
	if f.Accent != "" {
		border = f.Accent
	}
	if f.Focused {
		border = lipgloss.Color("#a6e3a1")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))

	titlePrefix := "  "
	if f.Focused {
		titlePrefix = "● "
	}
	titleSuffix := ""
	if f.Floating { // close affordance only makes sense on free surfaces
		titleSuffix = " ✕"
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
		width = innerWidth + 2
	}

	title := strings.TrimSpace(titlePrefix + f.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText)+ansi.StringWidth(titleSuffix) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2-ansi.StringWidth(titleSuffix)), "") + " "
	}
	titleW := ansi.StringWidth(titleText) + ansi.StringWidth(titleSuffix)
	dashes := innerWidth - titleW
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if dashes == 0 {
		leftDash = 0
	} else if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render(titleSuffix) +
		borderStyle.Render("╮")

	innerHeight := height - 2
	contentLines := splitLines(f.Content)
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = ansi.Truncate(line, contentWidth, "")
		line = contentStyle.Render(line)
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰")+borderStyle.Render(strings.Repeat("─", innerWidth))+borderStyle.Render("╯"))

	return strings.Join(rows, "\n")
}
