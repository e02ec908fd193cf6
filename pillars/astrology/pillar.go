package astrology

import (
	tea "github.com/charmbracelet/bubbletea"

	"arcanum/core"
)

const (
	Title = "Astrology"

	chartKey   = "star-chart"
	planetsKey = "planets"
)

// Pillar wires the astrology tab into the shell.
type Pillar struct{}

func New() *Pillar { return &Pillar{} }

func (p *Pillar) Attach(strip *core.TabStrip) error {
	tabID := strip.AddTab(Title)
	if _, err := strip.AddPanelButton(tabID, "Star Chart", "the field above", openChart); err != nil {
		return err
	}
	if _, err := strip.AddWindowButton(tabID, "Planets", "classical correspondences", openPlanets); err != nil {
		return err
	}
	return nil
}

func openChart(m *core.Model) tea.Cmd {
	_, cmd := m.Windows().OpenPanelAt(chartKey, NewStarChart(), "Star Chart", core.DockRight)
	return cmd
}

func openPlanets(m *core.Model) tea.Cmd {
	_, cmd := m.Windows().OpenWindow(planetsKey, NewPlanetTable(), "Planets", core.Size{W: 48, H: 11})
	return cmd
}
