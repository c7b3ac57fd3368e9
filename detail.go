package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/recview/recview/internal/record"
)

// detailModel shows the parsed fields of the cursor record in the
// right pane. Content is rebuilt on every selection change and
// scrolled by whole lines.
type detailModel struct {
	rec    *record.Record
	lines  []string
	width  int
	height int
	scroll int
}

func newDetailModel() detailModel {
	return detailModel{}
}

func (d *detailModel) setSize(width, height int) {
	d.width = width
	d.height = height
	if d.rec != nil {
		d.rebuild()
	}
	d.clampScroll()
}

func (d *detailModel) setRecord(rec *record.Record) {
	d.rec = rec
	d.scroll = 0
	d.rebuild()
}

func (d *detailModel) scrollBy(n int) {
	d.scroll += n
	d.clampScroll()
}

func (d *detailModel) goTop()    { d.scroll = 0 }
func (d *detailModel) goBottom() { d.scroll = len(d.lines); d.clampScroll() }

func (d *detailModel) clampScroll() {
	if m := len(d.lines) - d.height; d.scroll > m {
		d.scroll = m
	}
	if d.scroll < 0 {
		d.scroll = 0
	}
}

// rebuild regenerates the display lines: a header, the fields sorted
// by name, then the raw line wrapped to the pane width.
func (d *detailModel) rebuild() {
	d.lines = d.lines[:0]
	if d.rec == nil {
		return
	}
	contentW := max(1, d.width-1) // room for scrollbar

	title := fmt.Sprintf("Record %d", d.rec.Index)
	d.lines = append(d.lines,
		styles.Header.Info.Render(title),
		styles.Header.Underline.Render(strings.Repeat("─", min(len(title), contentW))),
	)

	keys := make([]string, 0, len(d.rec.Fields))
	keyW := 0
	for k := range d.rec.Fields {
		keys = append(keys, k)
		if len(k) > keyW {
			keyW = len(k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		label := styles.Label.Render(padRight(k, keyW))
		value := styles.Value.Render(truncateValue(d.rec.Fields[k], max(1, contentW-keyW-2)))
		d.lines = append(d.lines, label+"  "+value)
	}

	d.lines = append(d.lines, "", styles.Label.Render("raw"))
	for _, l := range wrapText(d.rec.Raw, contentW) {
		d.lines = append(d.lines, styles.List.RawLine.Render(l))
	}
}

func (d *detailModel) view() string {
	if d.rec == nil {
		return styles.EmptyText.Render("no record selected")
	}

	end := min(d.scroll+d.height, len(d.lines))
	content := strings.Join(d.lines[d.scroll:end], "\n")

	sb := renderScrollbar(d.height, float64(len(d.lines)), float64(d.height), float64(d.scroll))
	if sb != "" {
		content = padContentWidth(content, max(0, d.width-1))
		content = joinScrollbar(content, sb)
	}
	return content
}

// padContentWidth pads each line to the given width so the scrollbar
// column lines up on the right edge.
func padContentWidth(content string, width int) string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return strings.Join(lines, "\n")
}

// wrapText hard-wraps s into chunks of at most width display cells,
// breaking on rune boundaries so multi-byte input stays valid UTF-8.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	if s == "" {
		return []string{""}
	}
	var out []string
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	return append(out, b.String())
}
