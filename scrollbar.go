package main

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// renderScrollbar produces a vertical scrollbar column of the given
// height using ┃ for the thumb and │ for the track. track and offset
// are in content rows (float, since scroll offsets are fractional in
// expanded display mode). Returns "" when the whole track fits.
func renderScrollbar(height int, track, visible, offset float64) string {
	if height <= 0 || track <= visible {
		return ""
	}

	// Thumb size proportional to the visible share, minimum 1 cell.
	thumbH := int(float64(height) * visible / track)
	if thumbH < 1 {
		thumbH = 1
	}

	scrollable := track - visible
	if scrollable < 1 {
		scrollable = 1
	}
	thumbPos := int(float64(height-thumbH) * offset / scrollable)
	if thumbPos > height-thumbH {
		thumbPos = height - thumbH
	}
	if thumbPos < 0 {
		thumbPos = 0
	}

	var b strings.Builder
	for i := range height {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbPos && i < thumbPos+thumbH {
			b.WriteString(styles.ScrollThumb.Render(ScrollThumbChar))
		} else {
			b.WriteString(styles.ScrollTrack.Render(ScrollTrackChar))
		}
	}
	return b.String()
}

// joinScrollbar places a scrollbar column to the right of the content.
func joinScrollbar(content, scrollbar string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
}
