package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget is anything that can draw itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
