package numerology

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"arcanum/core"
	"arcanum/internal/database/repository"
)

const (
	// Title keys the tab's accent color.
	Title = "Numerology"

	calculatorKey = "calculator"
	notesKey      = "number-notes"
)

// Pillar wires the numerology tab into the shell.
type Pillar struct {
	notes *repository.NoteRepo
}

func New(notes *repository.NoteRepo) *Pillar {
	return &Pillar{notes: notes}
}

// Attach adds the tab and its launcher buttons. Buttons go through the
// dispatch table, so wiring order does not matter.
func (p *Pillar) Attach(strip *core.TabStrip) error {
	tabID := strip.AddTab(Title)
	if _, err := strip.AddPanelButton(tabID, "Calculator", "score a phrase across ciphers", p.openCalculator); err != nil {
		return err
	}
	if _, err := strip.AddWindowButton(tabID, "Number Notes", "notes on the current number", p.openNotes); err != nil {
		return err
	}
	return nil
}

func (p *Pillar) openCalculator(m *core.Model) tea.Cmd {
	_, cmd := m.Windows().OpenPanelAt(calculatorKey, NewCalculator(), "Calculator", core.DockLeft)
	return cmd
}

// openNotes keys the note book to the calculator's current phrase when one
// is open, falling back to 0.
func (p *Pillar) openNotes(m *core.Model) tea.Cmd {
	subject := "0"
	if panel, ok := m.Windows().Panel(calculatorKey); ok && panel.Alive() {
		if phrase, has := panel.Payload(); has && strings.TrimSpace(phrase) != "" {
			subject = fmt.Sprintf("%d", ReduceNumber(Ordinal().Sum(phrase)))
		}
	}
	_, cmd := m.Windows().OpenWindow(notesKey, NewNoteBook(p.notes, subject), "Number Notes", core.Size{W: 40, H: 14})
	return cmd
}
