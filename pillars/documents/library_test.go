package documents

import (
	"os"
	"path/filepath"
	"testing"

	"arcanum/internal/logging"
)

func writeDoc(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLibraryScansDir(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "emerald.md", "as above, so below")
	writeDoc(t, dir, "kybalion.md", "the all is mind")
	writeDoc(t, dir, ".hidden", "skip me")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(dir, logging.Nop())
	defer lib.Release()

	if got := len(lib.list.Items()); got != 2 {
		t.Fatalf("items = %d, want 2 (hidden files and dirs skipped)", got)
	}
}

func TestLibraryRescanOnChange(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "one.md", "1")

	lib := NewLibrary(dir, logging.Nop())
	defer lib.Release()
	if got := len(lib.list.Items()); got != 1 {
		t.Fatalf("initial items = %d, want 1", got)
	}

	writeDoc(t, dir, "two.md", "2")
	lib.Update(docsChangedMsg{})
	if got := len(lib.list.Items()); got != 2 {
		t.Fatalf("items after change = %d, want 2", got)
	}
}

func TestLibraryPayloadIsSelectedPath(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "emerald.md", "x")

	lib := NewLibrary(dir, logging.Nop())
	defer lib.Release()

	want := filepath.Join(dir, "emerald.md")
	if got := lib.Payload(); got != want {
		t.Fatalf("Payload() = %q, want %q", got, want)
	}
}

func TestLibraryMissingDir(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "nope"), logging.Nop())
	defer lib.Release()

	if got := len(lib.list.Items()); got != 0 {
		t.Fatalf("items = %d, want 0", got)
	}
	if got := lib.Payload(); got != "" {
		t.Fatalf("Payload() = %q, want empty", got)
	}
}

func TestLibraryReleaseIdempotent(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary(dir, logging.Nop())
	lib.Release()
	lib.Release()
	if lib.watcher != nil {
		t.Fatal("watcher should be nil after release")
	}
}
