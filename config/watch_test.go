package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWatchedFileOnly(t *testing.T) {
	dir := t.TempDir()
	tuning := filepath.Join(dir, "tuning.yaml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(tuning, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(tuning)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tuning, []byte("player:\n  move_speed: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(tuning)
	select {
	case got := <-w.Events:
		if got != want {
			t.Fatalf("event for %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the tuning file")
	}
}

func TestWatcherDrain(t *testing.T) {
	w := &Watcher{Events: make(chan string, 4), Errors: make(chan error, 1)}
	w.Events <- "a.yaml"
	w.Events <- "b.yaml"
	w.Errors <- os.ErrClosed

	var applied []string
	var reported int
	n := w.Drain(func(p string) error {
		applied = append(applied, p)
		if p == "b.yaml" {
			return os.ErrInvalid
		}
		return nil
	}, func(error) { reported++ })

	if n != 1 || len(applied) != 2 || reported != 2 {
		t.Fatalf("n=%d applied=%v reported=%d", n, applied, reported)
	}
}
