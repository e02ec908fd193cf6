package geometry

import (
	tea "github.com/charmbracelet/bubbletea"

	"arcanum/core"
)

const (
	Title = "Geometry"

	inspectorKey = "polygon-inspector"
)

// Pillar wires the geometry tab into the shell.
type Pillar struct{}

func New() *Pillar { return &Pillar{} }

func (p *Pillar) Attach(strip *core.TabStrip) error {
	tabID := strip.AddTab(Title)
	_, err := strip.AddPanelButton(tabID, "Polygon Inspector", "angles of the regular polygons", openInspector)
	return err
}

func openInspector(m *core.Model) tea.Cmd {
	_, cmd := m.Windows().OpenPanelAt(inspectorKey, NewInspector(), "Polygon Inspector", core.DockBottom)
	return cmd
}
