package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, w *Watcher, want string) {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if name == want {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-timeout:
			t.Fatalf("no event for %s", want)
		}
	}
}

func TestReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "editor.yaml")
	other := filepath.Join(dir, "other.yaml")
	for _, p := range []string{target, other} {
		if err := os.WriteFile(p, []byte("a: 1\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	w, err := New(target)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("a: 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(target, []byte("a: 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	abs, _ := filepath.Abs(target)
	waitFor(t, w, abs)
}

func TestAddLaterAndDrain(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(img, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer w.Close()

	if got := w.Drain(); len(got) != 0 {
		t.Fatalf("unexpected events %v", got)
	}
	if err := w.Add(img); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := w.Add(img); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if err := os.WriteFile(img, []byte("y"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	abs, _ := filepath.Abs(img)
	waitFor(t, w, abs)
}

func TestCloseTwice(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestAddMissingDirectory(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Join(t.TempDir(), "nope", "file.yaml")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
