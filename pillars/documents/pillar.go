package documents

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"arcanum/core"
	"arcanum/internal/database/repository"
)

const (
	Title = "Documents"

	libraryKey     = "library"
	annotationsKey = "annotations"
)

// Pillar wires the documents tab into the shell.
type Pillar struct {
	dir  string
	repo *repository.AnnotationRepo
	log  *zap.Logger

	// lastDoc survives the library window so annotations can reopen on the
	// same document; cleared when the editor itself closes.
	lastDoc string
}

func New(dir string, repo *repository.AnnotationRepo, log *zap.Logger) *Pillar {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pillar{dir: dir, repo: repo, log: log}
}

// Attach adds the tab and subscribes to closed-surface notifications so the
// pillar's cached selection never outlives its editor.
func (p *Pillar) Attach(strip *core.TabStrip, wm *core.WindowManager) error {
	tabID := strip.AddTab(Title)
	if _, err := strip.AddWindowButton(tabID, "Library", "documents on disk", p.openLibrary); err != nil {
		return err
	}
	if _, err := strip.AddPanelButton(tabID, "Annotations", "annotate the selected document", p.openAnnotations); err != nil {
		return err
	}
	wm.OnClosed(func(key string) {
		if key == annotationsKey {
			p.lastDoc = ""
		}
	})
	return nil
}

func (p *Pillar) openLibrary(m *core.Model) tea.Cmd {
	_, cmd := m.Windows().OpenWindow(libraryKey, NewLibrary(p.dir, p.log), "Library", core.Size{W: 44, H: 16})
	return cmd
}

func (p *Pillar) openAnnotations(m *core.Model) tea.Cmd {
	doc := p.lastDoc
	if w, ok := m.Windows().Window(libraryKey); ok && w.Alive() {
		if path, has := w.Payload(); has && path != "" {
			doc = path
		}
	}
	if doc == "" {
		return core.StatusCmd("open the library and select a document first")
	}
	p.lastDoc = doc
	_, cmd := m.Windows().OpenPanelAt(annotationsKey, NewAnnotationEditor(p.repo, doc), "Annotations", core.DockRight)
	return cmd
}
