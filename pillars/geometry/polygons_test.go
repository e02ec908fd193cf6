package geometry

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyDown() tea.Msg { return tea.KeyMsg{Type: tea.KeyDown} }
func keyUp() tea.Msg   { return tea.KeyMsg{Type: tea.KeyUp} }

func TestInteriorAngle(t *testing.T) {
	tests := []struct {
		sides int
		want  float64
	}{
		{3, 60},
		{4, 90},
		{5, 108},
		{6, 120},
		{12, 150},
		{2, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := InteriorAngle(tt.sides); got != tt.want {
			t.Errorf("InteriorAngle(%d) = %v, want %v", tt.sides, got, tt.want)
		}
	}
}

func TestAngleSum(t *testing.T) {
	if got := AngleSum(3); got != 180 {
		t.Fatalf("triangle sum = %v", got)
	}
	if got := AngleSum(6); got != 720 {
		t.Fatalf("hexagon sum = %v", got)
	}
	if got := AngleSum(1); got != 0 {
		t.Fatalf("degenerate sum = %v", got)
	}
}

func TestInspectorCursorBounds(t *testing.T) {
	i := NewInspector()
	for n := 0; n < 50; n++ {
		i.Update(keyDown())
	}
	if i.cursor != len(polygons)-1 {
		t.Fatalf("cursor = %d, want %d", i.cursor, len(polygons)-1)
	}
	for n := 0; n < 50; n++ {
		i.Update(keyUp())
	}
	if i.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", i.cursor)
	}
}
