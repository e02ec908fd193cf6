// Package documents hosts the document library and the annotation editor.
package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// docsChangedMsg fires when the watched directory changes on disk.
type docsChangedMsg struct{}

type docItem struct {
	name string
	path string
	size int64
}

func (d docItem) Title() string       { return d.name }
func (d docItem) Description() string { return fmt.Sprintf("%d bytes", d.size) }
func (d docItem) FilterValue() string { return d.name }

// Library is the document list window content. The list tracks the docs
// directory live through an fsnotify watcher; the watcher is released with
// the content.
type Library struct {
	dir     string
	list    list.Model
	watcher *fsnotify.Watcher
	log     *zap.Logger
}

func NewLibrary(dir string, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Library"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7"))

	lib := &Library{dir: dir, list: l, log: log}
	lib.rescan()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("library runs without a watcher", zap.Error(err))
		return lib
	}
	if err := w.Add(dir); err != nil {
		log.Warn("cannot watch docs dir", zap.String("dir", dir), zap.Error(err))
		_ = w.Close()
		return lib
	}
	lib.watcher = w
	return lib
}

func (l *Library) Init() tea.Cmd { return l.waitCmd() }

func (l *Library) MinSize() (int, int) { return 38, 12 }

// Release closes the watcher. Runs once, when the content leaves its
// surface.
func (l *Library) Release() {
	if l.watcher != nil {
		_ = l.watcher.Close()
		l.watcher = nil
	}
}

// Payload is the selected document's path.
func (l *Library) Payload() string {
	if item, ok := l.list.SelectedItem().(docItem); ok {
		return item.path
	}
	return ""
}

func (l *Library) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case docsChangedMsg:
		l.rescan()
		return l.waitCmd()
	}
	var cmd tea.Cmd
	l.list, cmd = l.list.Update(msg)
	return cmd
}

func (l *Library) View(width, height int) string {
	l.list.SetSize(width, height)
	return l.list.View()
}

func (l *Library) rescan() {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.log.Warn("cannot read docs dir", zap.String("dir", l.dir), zap.Error(err))
		l.list.SetItems(nil)
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		items = append(items, docItem{
			name: e.Name(),
			path: filepath.Join(l.dir, e.Name()),
			size: info.Size(),
		})
	}
	l.list.SetItems(items)
}

// waitCmd blocks on the next filesystem event. The returned message routes
// back through Update, which rescans and re-arms.
func (l *Library) waitCmd() tea.Cmd {
	w := l.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			return docsChangedMsg{}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.log.Warn("watcher error", zap.Error(err))
			return docsChangedMsg{}
		}
	}
}
