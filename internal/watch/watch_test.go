package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNotifyOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	notified := make(chan struct{}, 1)
	w, err := New(path, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("two\n"), 0o644); err != nil {
		t.Fatalf("rewriting fixture: %v", err)
	}

	select {
	case <-notified:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	notified := make(chan struct{}, 1)
	w, err := New(path, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	select {
	case <-notified:
		t.Fatal("sibling file change should not notify")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNotifyOnReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	notified := make(chan struct{}, 1)
	w, err := New(path, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	// Atomic replace: write a temp file and rename it over the target, the
	// way editors save.
	tmp := filepath.Join(dir, ".watched.txt.tmp")
	if err := os.WriteFile(tmp, []byte("two\n"), 0o644); err != nil {
		t.Fatalf("writing temp: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("renaming: %v", err)
	}

	select {
	case <-notified:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for replace notification")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	w, err := New(path, func() {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "no-such-dir", "file.txt"), func() {})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
