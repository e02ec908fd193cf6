package core

// Geometry is a surface's placement in terminal cells.
type Geometry struct {
	X int
	Y int
	W int
	H int
}

func (g Geometry) Valid() bool {
	return g.W > 0 && g.H > 0
}

// Size is an explicit width/height request for OpenWindow.
type Size struct {
	W int
	H int
}

// DockArea names the shell region a docked panel attaches to.
type DockArea int

const (
	DockLeft DockArea = iota
	DockRight
	DockBottom
)

func (d DockArea) String() string {
	switch d {
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// clampInto shifts and shrinks g so it stays inside a width x height canvas.
func clampInto(g Geometry, width, height int) Geometry {
	if g.W > width {
		g.W = width
	}
	if g.H > height {
		g.H = height
	}
	if g.X+g.W > width {
		g.X = width - g.W
	}
	if g.Y+g.H > height {
		g.Y = height - g.H
	}
	if g.X < 0 {
		g.X = 0
	}
	if g.Y < 0 {
		g.Y = 0
	}
	return g
}
