package main

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/recview/recview/internal/record"
	"github.com/recview/recview/internal/window"
)

// rangeChangedMsg is the visible-range-changed notification. One is
// emitted after every recomputation, whether or not the range moved,
// starting with a baseline once the initial viewport size arrives.
type rangeChangedMsg struct {
	start, end int
	total      int
}

// compactItemRows / expandedItemRows are the fixed per-record heights
// of the two display modes. The window calculator takes the height as
// a float; the viewer only ever feeds it whole rows.
const (
	compactItemRows  = 1.0
	expandedItemRows = 2.0
)

// vlistModel hosts the window calculator: it holds the most recent
// input snapshot (scroll offset, viewport size, item height, backing
// sequence) and rematerializes the visible slice on every change.
// Only the computed window is ever rendered; the scrollbar stands in
// for the full track.
type vlistModel struct {
	items  []record.Record
	offset float64 // scroll offset from the top of the track, in rows
	width  int
	height int // viewport rows
	buffer int // overscan items on each side
	itemH  float64
	cursor int
	plan   window.Plan // most recent computation
}

func newVlist(buffer int, expanded bool) vlistModel {
	v := vlistModel{buffer: buffer, itemH: compactItemRows}
	if expanded {
		v.itemH = expandedItemRows
	}
	return v
}

func (v *vlistModel) input() window.Input {
	return window.Input{
		ScrollOffset:   v.offset,
		ViewportHeight: float64(v.height),
		ItemHeight:     v.itemH,
		Buffer:         v.buffer,
		Count:          len(v.items),
	}
}

// recompute reruns the window calculation against the current
// snapshot and returns the notification command. Range first, then
// placement: ComputePlan keeps that ordering internally.
func (v *vlistModel) recompute() tea.Cmd {
	plan, err := window.ComputePlan(v.input())
	if err != nil {
		// Item height is one of two positive constants; this cannot
		// fail once the model is constructed.
		panic(err)
	}
	v.plan = plan
	msg := rangeChangedMsg{start: plan.Range.Start, end: plan.Range.End, total: len(v.items)}
	return func() tea.Msg { return msg }
}

// setSize records a viewport size change and recomputes.
func (v *vlistModel) setSize(width, height int) tea.Cmd {
	v.width = width
	v.height = height
	v.clampOffset()
	return v.recompute()
}

// setItems replaces the backing sequence. The scroll position resets
// only when the length changed; in-place content edits keep both the
// position and the cursor. Intentional: reload of a same-sized file
// should not yank the user back to the top.
func (v *vlistModel) setItems(items []record.Record) tea.Cmd {
	lengthChanged := len(items) != len(v.items)
	v.items = items
	if lengthChanged {
		v.offset = 0
		v.cursor = 0
	}
	if v.cursor >= len(items) {
		v.cursor = max(0, len(items)-1)
	}
	v.clampOffset()
	return v.recompute()
}

// scrollBy moves the scroll offset by the given number of rows
// (positive = down), clamped to the track.
func (v *vlistModel) scrollBy(rows float64) tea.Cmd {
	v.offset += rows
	v.clampOffset()
	v.snapCursor()
	return v.recompute()
}

// scrollToIndex jumps the viewport so the item at index sits at the
// top, going through the same recompute/notify path as a user scroll.
func (v *vlistModel) scrollToIndex(index int) tea.Cmd {
	index = v.clampIndex(index)
	v.offset = window.IndexOffset(index, v.itemH)
	v.clampOffset()
	v.cursor = index
	return v.recompute()
}

// setExpanded switches between 1-row and 2-row records, keeping the
// same item at the top of the viewport.
func (v *vlistModel) setExpanded(on bool) tea.Cmd {
	top := int(v.offset / v.itemH)
	if on {
		v.itemH = expandedItemRows
	} else {
		v.itemH = compactItemRows
	}
	v.offset = window.IndexOffset(top, v.itemH)
	v.clampOffset()
	return v.recompute()
}

func (v *vlistModel) isExpanded() bool { return v.itemH > compactItemRows }

func (v *vlistModel) len() int { return len(v.items) }

// selected returns the record under the cursor, or nil when empty.
func (v *vlistModel) selected() *record.Record {
	if v.cursor >= 0 && v.cursor < len(v.items) {
		return &v.items[v.cursor]
	}
	return nil
}

// setCursor moves the cursor to an already-visible item (mouse click)
// without scrolling, beyond keeping it inside the viewport.
func (v *vlistModel) setCursor(index int) tea.Cmd {
	v.cursor = v.clampIndex(index)
	v.ensureVisible()
	return v.recompute()
}

func (v *vlistModel) cursorBy(n int) tea.Cmd {
	v.cursor = v.clampIndex(v.cursor + n)
	v.ensureVisible()
	return v.recompute()
}

// pageBy moves the cursor by one viewport's worth of items.
func (v *vlistModel) pageBy(dir int) tea.Cmd {
	page := int(float64(v.height) / v.itemH)
	if page < 1 {
		page = 1
	}
	return v.cursorBy(dir * page)
}

func (v *vlistModel) goTop() tea.Cmd {
	v.cursor = 0
	v.offset = 0
	return v.recompute()
}

func (v *vlistModel) goBottom() tea.Cmd {
	v.cursor = v.clampIndex(len(v.items) - 1)
	v.ensureVisible()
	return v.recompute()
}

func (v *vlistModel) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if n := len(v.items); i >= n {
		return max(0, n-1)
	}
	return i
}

func (v *vlistModel) clampOffset() {
	if m := window.MaxOffset(v.input()); v.offset > m {
		v.offset = m
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// ensureVisible scrolls just enough to bring the cursor item fully
// into the viewport.
func (v *vlistModel) ensureVisible() {
	top := window.IndexOffset(v.cursor, v.itemH)
	bottom := top + v.itemH
	if top < v.offset {
		v.offset = top
	} else if view := float64(v.height); bottom > v.offset+view {
		v.offset = bottom - view
	}
	v.clampOffset()
}

// snapCursor pulls the cursor back inside the viewport after an
// offset-driven scroll (mouse wheel), mirroring ensureVisible in the
// other direction.
func (v *vlistModel) snapCursor() {
	if len(v.items) == 0 {
		return
	}
	first := int((v.offset + v.itemH - 1) / v.itemH) // first fully visible
	last := int((v.offset+float64(v.height))/v.itemH) - 1
	if last < first {
		last = first
	}
	if v.cursor < first {
		v.cursor = v.clampIndex(first)
	} else if v.cursor > last {
		v.cursor = v.clampIndex(last)
	}
}

// view renders the materialized window. Rows are generated only for
// plan.Range; the offset difference between the scroll position and
// the window's track placement decides how many lead rows to drop.
func (v *vlistModel) view(focused bool) string {
	if len(v.items) == 0 {
		return styles.EmptyText.Render("no records")
	}

	r := v.plan.Range
	needScroll := v.plan.TrackHeight > float64(v.height)
	contentW := v.width
	if needScroll {
		contentW = v.width - 1
	}

	idxW := len(fmt.Sprint(len(v.items) - 1))
	lines := make([]string, 0, r.Len()*int(v.itemH))
	for i := r.Start; i < r.End; i++ {
		lines = append(lines, v.renderItem(v.items[i], i, i == v.cursor && focused, idxW, contentW)...)
	}

	// Drop the buffered rows above the viewport, cap to its height.
	skip := int(v.offset - v.plan.Offset)
	if skip < 0 {
		skip = 0
	}
	if skip > len(lines) {
		skip = len(lines)
	}
	lines = lines[skip:]
	if len(lines) > v.height {
		lines = lines[:v.height]
	}

	content := strings.Join(lines, "\n")
	if needScroll {
		sb := renderScrollbar(v.height, v.plan.TrackHeight, float64(v.height), v.offset)
		if sb != "" {
			content = joinScrollbar(content, sb)
		}
	}
	return content
}

// renderItem renders one record as itemH rows.
func (v *vlistModel) renderItem(rec record.Record, index int, selected bool, idxW, width int) []string {
	idx := styles.List.Index.Render(fmt.Sprintf("%*d", idxW, index))
	summary := levelStyle(rec.Level()).Render(truncateValue(rec.Summary(), max(1, width-idxW-4)))

	first := idx + "  " + summary
	if selected {
		first = renderSelectedRow(first, width)
	} else {
		first = "  " + first
	}

	if !v.isExpanded() {
		return []string{first}
	}

	raw := styles.List.RawLine.Render(truncateValue(rec.Raw, max(1, width-idxW-4)))
	second := strings.Repeat(" ", idxW+4) + raw
	return []string{first, second}
}
