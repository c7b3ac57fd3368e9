package watch

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.ndjson")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	log := slog.New(slog.DiscardHandler)
	w, err := New(path, 50*time.Millisecond, log)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))

	select {
	case <-w.Changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.ndjson")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	log := slog.New(slog.DiscardHandler)
	w, err := New(path, 50*time.Millisecond, log)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0o644))

	select {
	case <-w.Changes:
		t.Fatal("unexpected notification for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}
