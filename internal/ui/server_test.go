package ui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/notifier"
)

func TestWatchFilesBroadcastsOnAssetWrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))

	s := &Server{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		notifier: notifier.NewHub(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.watchFiles(ctx, dir)
	}()

	ch := s.notifier.Subscribe()
	defer s.notifier.Unsubscribe(ch)

	// Give the watcher a moment to register the directory tree.
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reload broadcast after writing a watched asset")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancellation")
	}
}

func TestWatchFilesIgnoresUnwatchedExtensions(t *testing.T) {
	dir := t.TempDir()

	s := &Server{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		notifier: notifier.NewHub(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = s.watchFiles(ctx, dir) }()

	ch := s.notifier.Subscribe()
	defer s.notifier.Unsubscribe(ch)

	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("draft"), 0o644))

	select {
	case <-ch:
		t.Fatal("unexpected broadcast for a non-asset file")
	case <-time.After(500 * time.Millisecond):
	}
}
