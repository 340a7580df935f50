package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLocal_Open reads back written content and honors canceled contexts.
func TestLocal_Open(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	rc, err := NewLocal(path).Open(context.Background())
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer rc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLocal(path).Open(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Open with canceled ctx: err = %v, want context.Canceled", err)
	}

	_, err = NewLocal(filepath.Join(dir, "missing.json")).Open(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open missing file: err = %v, want os.ErrNotExist", err)
	}
}

// TestReadList skips blanks and comments and preserves order.
func TestReadList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	content := "# header\n\n/a/one.json\n  /a/two.json  \n# tail\n/a/three.json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadList(path)
	if err != nil {
		t.Fatalf("ReadList error: %v", err)
	}
	want := []string{"/a/one.json", "/a/two.json", "/a/three.json"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestListJSON finds only top-level *.json files, sorted.
func TestListJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "c.txt", "D.JSON"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := ListJSON(dir)
	if err != nil {
		t.Fatalf("ListJSON error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "D.JSON"),
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}
