package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func canvas(width, height int, fill string) string {
	row := strings.Repeat(fill, width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestOverlayAtReplacesCells(t *testing.T) {
	base := canvas(10, 4, ".")
	out := OverlayAt(base, "AB\nCD", 3, 1, 10, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if lines[1] != "...AB....." {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "...CD....." {
		t.Fatalf("row 2 = %q", lines[2])
	}
	if lines[0] != ".........." {
		t.Fatalf("row 0 disturbed: %q", lines[0])
	}
}

func TestOverlayAtClipsRightEdge(t *testing.T) {
	base := canvas(6, 2, ".")
	out := OverlayAt(base, "WIDE!", 4, 0, 6, 2)
	lines := strings.Split(out, "\n")
	if lines[0] != "....WI" {
		t.Fatalf("row 0 = %q", lines[0])
	}
	for _, l := range lines {
		if ansi.StringWidth(l) != 6 {
			t.Fatalf("row width = %d, want 6", ansi.StringWidth(l))
		}
	}
}

func TestOverlayAtClipsBelowCanvas(t *testing.T) {
	base := canvas(4, 2, ".")
	out := OverlayAt(base, "a\nb\nc\nd", 0, 1, 4, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[1], "a") {
		t.Fatalf("row 1 = %q", lines[1])
	}
}

func TestRenderPopupKeepsCanvasSize(t *testing.T) {
	base := canvas(40, 12, " ")
	out := RenderPopup(base, "pick me", 40, 12)
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("lines = %d, want 12", len(lines))
	}
	if !strings.Contains(out, "pick me") {
		t.Fatal("popup content missing")
	}
}

func TestFrameFillsBox(t *testing.T) {
	f := Frame{Title: "Calc", Content: "1+1"}
	out := f.Render(20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}
	for i, l := range lines {
		if ansi.StringWidth(l) != 20 {
			t.Fatalf("line %d width = %d, want 20", i, ansi.StringWidth(l))
		}
	}
	if !strings.Contains(ansi.Strip(out), "Calc") {
		t.Fatal("title missing from top border")
	}
}

func TestFrameFloatingShowsCloseHint(t *testing.T) {
	floating := Frame{Title: "W", Floating: true}.Render(16, 4)
	docked := Frame{Title: "W"}.Render(16, 4)
	if !strings.Contains(ansi.Strip(floating), "✕") {
		t.Fatal("floating frame should carry the close hint")
	}
	if strings.Contains(ansi.Strip(docked), "✕") {
		t.Fatal("docked frame should not carry the close hint")
	}
}
