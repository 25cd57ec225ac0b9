package config

import (
	"testing"
	"time"
)

func drainClosed(t *testing.T, name string, recv func() bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		done := make(chan bool, 1)
		go func() { done <- recv() }()
		select {
		case ok := <-done:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("%s channel not closed after Close", name)
		}
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Close is idempotent.
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	// The watcher goroutine stops sending before the channels close, so
	// draining terminates and never panics.
	drainClosed(t, "Events", func() bool { _, ok := <-w.Events; return ok })
	drainClosed(t, "Errors", func() bool { _, ok := <-w.Errors; return ok })
}

func TestWatcherRejectsMissingDir(t *testing.T) {
	if _, err := NewWatcher("/definitely/not/a/dir"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
