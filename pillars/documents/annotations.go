package documents

import (
	"context"
	"fmt"
	"path/filepath"
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
	annDocStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7"))
	annDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	annSelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
)

// AnnotationEditor is the annotation panel content for one document.
type AnnotationEditor struct {
	repo    *repository.AnnotationRepo
	docPath string
	input   textinput.Model
	rows    []repository.Annotation
	cursor  int
}

func NewAnnotationEditor(repo *repository.AnnotationRepo, docPath string) *AnnotationEditor {
	inp := textinput.New()
	inp.Placeholder = "annotate"
	inp.Prompt = "+ "
	inp.Focus()
	e := &AnnotationEditor{repo: repo, docPath: docPath, input: inp}
	e.reload()
	return e
}

func (e *AnnotationEditor) reload() {
	rows, err := e.repo.ByDoc(context.Background(), e.docPath)
	if err != nil {
		return
	}
	e.rows = rows
	if e.cursor >= len(e.rows) {
		e.cursor = len(e.rows) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *AnnotationEditor) Init() tea.Cmd { return textinput.Blink }

func (e *AnnotationEditor) MinSize() (int, int) { return 36, 9 }

func (e *AnnotationEditor) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			body := strings.TrimSpace(e.input.Value())
			if body == "" {
				return nil
			}
			err := e.repo.Add(context.Background(), repository.Annotation{
				ID: uuid.NewString(), DocPath: e.docPath, Body: body,
				CreatedAt: database.Now(),
			})
			if err != nil {
				return core.ErrorCmd(err)
			}
			e.input.SetValue("")
			e.reload()
			return core.StatusCmd("annotation saved")
		case "up":
			if e.cursor > 0 {
				e.cursor--
			}
			return nil
		case "down":
			if e.cursor < len(e.rows)-1 {
				e.cursor++
			}
			return nil
		case "ctrl+d":
			if e.cursor >= 0 && e.cursor < len(e.rows) {
				if err := e.repo.Delete(context.Background(), e.rows[e.cursor].ID); err != nil {
					return core.ErrorCmd(err)
				}
				e.reload()
			}
			return nil
		}
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

func (e *AnnotationEditor) View(width, height int) string {
	var b strings.Builder
	b.WriteString(annDocStyle.Render(filepath.Base(e.docPath)))
	b.WriteString("\n")
	b.WriteString(e.input.View())
	b.WriteString("\n\n")
	if len(e.rows) == 0 {
		b.WriteString(annDimStyle.Render("no annotations"))
		return b.String()
	}
	visible := height - 4
	for i, a := range e.rows {
		if visible > 0 && i >= visible {
			b.WriteString(annDimStyle.Render(fmt.Sprintf("… %d more", len(e.rows)-i)))
			break
		}
		if i == e.cursor {
			b.WriteString(annSelStyle.Render("▸ " + a.Body))
		} else {
			b.WriteString("  " + a.Body)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
