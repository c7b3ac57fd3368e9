package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recview/recview/internal/record"
	"github.com/recview/recview/internal/window"
)

func makeRecords(n int) []record.Record {
	records := make([]record.Record, n)
	for i := range records {
		records[i] = record.Record{
			Index: i,
			Raw:   fmt.Sprintf(`{"msg":"event %d","level":"info"}`, i),
			Fields: map[string]string{
				"msg":   fmt.Sprintf("event %d", i),
				"level": "info",
			},
		}
	}
	return records
}

func TestVlistEmitsRangeOnEveryRecompute(t *testing.T) {
	v := newVlist(5, false)
	_ = v.setItems(makeRecords(1000))

	cmd := v.setSize(80, 10)
	require.NotNil(t, cmd, "baseline notification after first size")
	msg, ok := cmd().(rangeChangedMsg)
	require.True(t, ok)
	require.Equal(t, 0, msg.start)
	require.Equal(t, 15, msg.end, "viewport 10 plus buffer 5")
	require.Equal(t, 1000, msg.total)

	// A recompute that does not move the range still notifies.
	cmd = v.scrollBy(0)
	require.NotNil(t, cmd)
	again, ok := cmd().(rangeChangedMsg)
	require.True(t, ok)
	require.Equal(t, msg.start, again.start)
	require.Equal(t, msg.end, again.end)
}

func TestVlistScrollRange(t *testing.T) {
	v := newVlist(5, false)
	_ = v.setItems(makeRecords(1000))
	_ = v.setSize(80, 10)

	cmd := v.scrollBy(100)
	msg, ok := cmd().(rangeChangedMsg)
	require.True(t, ok)
	require.Equal(t, 95, msg.start)
	require.Equal(t, 115, msg.end)
}

func TestVlistResetOnLengthChangeOnly(t *testing.T) {
	v := newVlist(2, false)
	_ = v.setItems(makeRecords(500))
	_ = v.setSize(80, 10)
	_ = v.scrollBy(200)
	_ = v.setCursor(205)

	require.Equal(t, float64(200), v.offset)
	require.Equal(t, 205, v.cursor)

	// Same length, different content: position and cursor survive.
	same := makeRecords(500)
	for i := range same {
		same[i].Raw = "edited"
	}
	_ = v.setItems(same)
	require.Equal(t, float64(200), v.offset)
	require.Equal(t, 205, v.cursor)

	// Different length: both reset.
	_ = v.setItems(makeRecords(600))
	require.Equal(t, float64(0), v.offset)
	require.Equal(t, 0, v.cursor)
}

func TestVlistShrinkClampsCursor(t *testing.T) {
	v := newVlist(2, false)
	_ = v.setItems(makeRecords(100))
	_ = v.setSize(80, 10)
	_ = v.setCursor(99)

	_ = v.setItems(makeRecords(5))
	require.Equal(t, 0, v.cursor, "length change resets cursor")
	require.LessOrEqual(t, v.cursor, 4)
}

func TestVlistScrollToIndex(t *testing.T) {
	v := newVlist(3, false)
	_ = v.setItems(makeRecords(1000))
	_ = v.setSize(80, 20)

	cmd := v.scrollToIndex(400)
	msg, ok := cmd().(rangeChangedMsg)
	require.True(t, ok)

	require.Equal(t, window.IndexOffset(400, 1), v.offset)
	require.Equal(t, 400, v.cursor)
	require.Equal(t, 397, msg.start)
	require.Equal(t, 423, msg.end)

	// Past the end: clamped so the last viewport is full.
	_ = v.scrollToIndex(5000)
	require.Equal(t, 999, v.cursor)
	require.Equal(t, float64(980), v.offset, "track 1000 minus viewport 20")

	// Negative clamps to the top.
	_ = v.scrollToIndex(-7)
	require.Equal(t, 0, v.cursor)
	require.Equal(t, float64(0), v.offset)
}

func TestVlistSetExpandedKeepsTopItem(t *testing.T) {
	v := newVlist(2, false)
	_ = v.setItems(makeRecords(1000))
	_ = v.setSize(80, 20)
	_ = v.scrollBy(300)

	_ = v.setExpanded(true)
	require.True(t, v.isExpanded())
	require.Equal(t, float64(600), v.offset, "item 300 at two rows each")

	_ = v.setExpanded(false)
	require.False(t, v.isExpanded())
	require.Equal(t, float64(300), v.offset)
}

func TestVlistViewRendersOnlyWindow(t *testing.T) {
	v := newVlist(4, false)
	_ = v.setItems(makeRecords(100000))
	_ = v.setSize(80, 12)
	_ = v.scrollBy(50000)

	out := v.view(true)
	lines := strings.Split(out, "\n")
	require.LessOrEqual(t, len(lines), 12)

	// The window is viewport plus buffers, never the whole sequence.
	require.Equal(t, 50000-4, v.plan.Range.Start)
	require.Equal(t, 50000+12+4, v.plan.Range.End)
}

func TestVlistEmptyView(t *testing.T) {
	v := newVlist(4, false)
	_ = v.setSize(80, 12)

	require.Nil(t, v.selected())
	out := v.view(true)
	require.Contains(t, out, "no records")
}

func TestVlistCursorPaging(t *testing.T) {
	v := newVlist(2, false)
	_ = v.setItems(makeRecords(100))
	_ = v.setSize(80, 10)

	_ = v.pageBy(1)
	require.Equal(t, 10, v.cursor)
	_ = v.pageBy(-1)
	require.Equal(t, 0, v.cursor)

	_ = v.goBottom()
	require.Equal(t, 99, v.cursor)
	_ = v.goTop()
	require.Equal(t, 0, v.cursor)
	require.Equal(t, float64(0), v.offset)
}
