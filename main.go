package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/lmittmann/tint"

	"github.com/recview/recview/internal/record"
	"github.com/recview/recview/internal/watch"
)

func main() {
	var buffer int
	var expanded bool
	var follow bool
	var logPath string

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `recview - interactive viewer for large NDJSON record files

Usage:
  recview [options] FILE

Options:
  -buffer N    overscan items rendered beyond each viewport edge (default 20)
  -expanded    start with two-row records (summary + raw line)
  -follow      watch the file and reload on change
  -log FILE    write debug logs to FILE

The viewer renders only the records visible in the viewport plus the
overscan buffer, so files with millions of records scroll smoothly.

Examples:
  recview app.ndjson              Browse a structured log file
  recview -follow app.ndjson      Keep reloading as the file grows
  recview -buffer 50 big.ndjson   Larger overscan for fast scrolling

Press ? inside recview for key bindings.
`)
	}

	flag.IntVar(&buffer, "buffer", 20, "overscan items beyond each viewport edge")
	flag.BoolVar(&expanded, "expanded", false, "start with two-row records")
	flag.BoolVar(&follow, "follow", false, "watch the file and reload on change")
	flag.StringVar(&logPath, "log", "", "write debug logs to FILE")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	log, logFile, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	records, err := record.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var watcher *watch.Watcher
	if follow {
		watcher, err = watch.New(path, 0, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: cannot watch %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	cfg := appConfig{
		path:     path,
		buffer:   buffer,
		expanded: expanded,
		follow:   follow,
	}

	app := newApp(cfg, records, watcher, log)

	p := tea.NewProgram(app)
	_, runErr := p.Run()
	if watcher != nil {
		watcher.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}

// setupLogger returns a tinted slog logger writing to path, or a
// discard logger when no path is given. TUI programs cannot log to
// stderr while running.
func setupLogger(path string) (*slog.Logger, *os.File, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := tint.NewHandler(f, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: true,
	})
	return slog.New(h), f, nil
}
