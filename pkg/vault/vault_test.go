package vault

import (
	"os"
	"path/filepath"
	"testing"

	"tasklens/pkg/parser"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "inbox.md"), "- [ ] Top level")
	writeFile(t, filepath.Join(dir, "projects", "alpha.md"), "- [ ] Nested")
	writeFile(t, filepath.Join(dir, "projects", "NOTES.MD"), "- [ ] Upper extension")
	writeFile(t, filepath.Join(dir, "attachment.png"), "binary")
	writeFile(t, filepath.Join(dir, "readme.txt"), "text")

	files, err := FindMarkdownFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
}

func TestFindMarkdownFilesMissingRoot(t *testing.T) {
	if _, err := FindMarkdownFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing vault root")
	}
}

func TestFindMarkdownFilesNotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.md")
	writeFile(t, path, "- [ ] Task")

	if _, err := FindMarkdownFiles(path); err == nil {
		t.Error("expected error when vault root is a file")
	}
}

func TestAllTasksAggregatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.md"), "- [ ] A\n- [x] B")
	writeFile(t, filepath.Join(dir, "sub", "two.md"), "- [-] C")
	writeFile(t, filepath.Join(dir, "empty.md"), "no tasks here")

	c := NewCache(parser.New())
	tasks, err := c.AllTasks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
}
