package main

import (
	"fmt"
	"image"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/recview/recview/internal/record"
	"github.com/recview/recview/internal/watch"
	"github.com/recview/recview/internal/window"
)

type focus int

const (
	focusList focus = iota
	focusDetail
	focusFilter
	focusGoto
)

// paneID identifies a bordered section for focus highlighting.
type paneID int

const (
	paneList paneID = iota
	paneDetail
)

// appLayout holds computed rectangle regions for each pane.
type appLayout struct {
	area   image.Rectangle // full screen
	header image.Rectangle // top header bar (1 row)
	list   image.Rectangle // left pane
	sep    image.Rectangle // vertical border column (1 column)
	detail image.Rectangle // right pane
	bottom image.Rectangle // hint/filter/goto/status bar
}

// appConfig holds CLI-provided configuration.
type appConfig struct {
	path     string
	buffer   int
	expanded bool
	follow   bool
}

// fileChangedMsg signals that the watched file was modified on disk.
type fileChangedMsg struct{}

// recordsLoadedMsg carries the result of an asynchronous file (re)load.
type recordsLoadedMsg struct {
	records []record.Record
	err     error
}

type model struct {
	cfg       appConfig
	log       *slog.Logger
	all       []record.Record // every record in the file, unfiltered
	list      vlistModel
	detail    detailModel
	filterBar filterBarModel
	gotoBar   gotoBarModel
	status    statusModel
	overlay   overlayModel
	keys      keyMap
	watcher   *watch.Watcher // nil unless follow mode

	focus        focus
	width        int
	height       int
	listWidthPct int
	cachedLayout appLayout
	visible      window.Range // last notified visible range
	stats        string
}

func newApp(cfg appConfig, records []record.Record, w *watch.Watcher, log *slog.Logger) model {
	list := newVlist(cfg.buffer, cfg.expanded)
	// Sizes are zero until the first WindowSizeMsg; the returned command
	// is discarded here because the program is not running yet. The
	// baseline range notification goes out with the initial layout.
	_ = list.setItems(records)

	filterBar := newFilterBar()
	filterBar.setFieldKeys(collectFieldKeys(records))

	m := model{
		cfg:          cfg,
		log:          log,
		all:          records,
		list:         list,
		detail:       newDetailModel(),
		filterBar:    filterBar,
		gotoBar:      newGotoBar(),
		keys:         defaultKeyMap(),
		watcher:      w,
		focus:        focusList,
		listWidthPct: 55,
	}
	m.stats = fmt.Sprintf("%d records", len(records))
	m.syncSelection()
	return m
}

func (m model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitChangeCmd(m.watcher)
	}
	return nil
}

// activePaneID returns the pane that currently has keyboard focus.
func (m model) activePaneID() paneID {
	if m.focus == focusDetail {
		return paneDetail
	}
	return paneList
}

// syncSelection pushes the list cursor record into the detail pane.
func (m *model) syncSelection() {
	m.detail.setRecord(m.list.selected())
}

// applyFilter reruns the compiled filter over the full record set and
// swaps the list's backing sequence. With no active filter every record
// shows. Returns the list's range notification command.
func (m *model) applyFilter() tea.Cmd {
	f := m.filterBar.filter
	f.matchCount = 0
	f.evalErr = ""

	if f.program == nil {
		m.filterBar.setFieldKeys(collectFieldKeys(m.all))
		cmd := m.list.setItems(m.all)
		m.syncSelection()
		return cmd
	}

	filtered := make([]record.Record, 0, len(m.all))
	for _, rec := range m.all {
		if f.eval(rec) {
			filtered = append(filtered, rec)
		}
	}
	f.matchCount = len(filtered)

	cmd := m.list.setItems(filtered)
	m.syncSelection()
	return cmd
}

// collectFieldKeys returns the union of field names across records,
// used for tab completion in the filter bar.
func collectFieldKeys(records []record.Record) map[string]bool {
	keys := make(map[string]bool)
	for i := range records {
		for k := range records[i].Fields {
			keys[k] = true
		}
	}
	return keys
}

// reloadCmd re-reads the record file off the update loop.
func reloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		records, err := record.Load(path)
		return recordsLoadedMsg{records: records, err: err}
	}
}

// waitChangeCmd blocks on the watcher's change channel and converts
// the next signal into a message. Re-armed after every reload.
func waitChangeCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}
