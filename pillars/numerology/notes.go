package numerology

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"arcanum/core"
	"arcanum/internal/database"
	"arcanum/internal/database/repository"
)

var (
	noteSubjectStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9e2af"))
	noteSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	noteDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// NoteBook is the number-notes window content. Notes are grouped under the
// subject number the book was opened on.
type NoteBook struct {
	repo    *repository.NoteRepo
	subject string
	input   textinput.Model
	notes   []repository.Note
	cursor  int
}

func NewNoteBook(repo *repository.NoteRepo, subject string) *NoteBook {
	inp := textinput.New()
	inp.Placeholder = "new note"
	inp.Prompt = "+ "
	inp.Focus()
	b := &NoteBook{repo: repo, subject: subject, input: inp}
	b.reload()
	return b
}

func (b *NoteBook) reload() {
	notes, err := b.repo.BySubject(context.Background(), b.subject)
	if err != nil {
		return
	}
	b.notes = notes
	if b.cursor >= len(b.notes) {
		b.cursor = len(b.notes) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func (b *NoteBook) Init() tea.Cmd { return textinput.Blink }

func (b *NoteBook) MinSize() (int, int) { return 34, 10 }

func (b *NoteBook) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			body := strings.TrimSpace(b.input.Value())
			if body == "" {
				return nil
			}
			now := database.Now()
			err := b.repo.Upsert(context.Background(), repository.Note{
				ID: uuid.NewString(), Subject: b.subject, Body: body,
				CreatedAt: now, UpdatedAt: now,
			})
			if err != nil {
				return core.ErrorCmd(err)
			}
			b.input.SetValue("")
			b.reload()
			return core.StatusCmd("note saved")
		case "up":
			if b.cursor > 0 {
				b.cursor--
			}
			return nil
		case "down":
			if b.cursor < len(b.notes)-1 {
				b.cursor++
			}
			return nil
		case "ctrl+d":
			if b.cursor >= 0 && b.cursor < len(b.notes) {
				if err := b.repo.Delete(context.Background(), b.notes[b.cursor].ID); err != nil {
					return core.ErrorCmd(err)
				}
				b.reload()
			}
			return nil
		}
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return cmd
}

func (b *NoteBook) View(width, height int) string {
	var out strings.Builder
	out.WriteString(noteSubjectStyle.Render("№ " + b.subject))
	out.WriteString("\n")
	out.WriteString(b.input.View())
	out.WriteString("\n\n")
	if len(b.notes) == 0 {
		out.WriteString(noteDimStyle.Render("no notes yet"))
		return out.String()
	}
	// header and input eat four rows
	visible := height - 4
	for i, n := range b.notes {
		if visible > 0 && i >= visible {
			out.WriteString(noteDimStyle.Render(fmt.Sprintf("… %d more", len(b.notes)-i)))
			break
		}
		line := n.Body
		if i == b.cursor {
			line = noteSelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n")
}
