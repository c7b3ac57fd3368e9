package main

import (
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

var (
	borderGrey   = lipgloss.NewStyle().Foreground(palette.Subtle)
	borderYellow = lipgloss.NewStyle().Foreground(palette.Yellow)
)

func (m model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.View{
			Content:   "Loading...",
			AltScreen: true,
			MouseMode: tea.MouseModeCellMotion,
		}
	}

	canvas := uv.NewScreenBuffer(m.width, m.height)
	l := m.cachedLayout

	// Filter help overlay
	if m.overlay.kind == overlayFilterHelp {
		m.overlay.drawCentered(canvas, l.area, renderFilterHelp())
		return tea.View{
			Content:   canvas.Render(),
			AltScreen: true,
			MouseMode: tea.MouseModeCellMotion,
		}
	}

	// Full-screen help overlay
	if m.overlay.kind == overlayHelp {
		m.overlay.drawCentered(canvas, l.area, renderFullHelp(m.keys))
		return tea.View{
			Content:   canvas.Render(),
			AltScreen: true,
			MouseMode: tea.MouseModeCellMotion,
		}
	}

	m.renderPanes(canvas, l)

	return tea.View{
		Content:   canvas.Render(),
		AltScreen: true,
		MouseMode: tea.MouseModeCellMotion,
	}
}

// renderPanes draws the header, borders, list, detail pane, and bottom
// bar onto the canvas.
func (m model) renderPanes(canvas uv.ScreenBuffer, l appLayout) {
	headerStr := m.renderHeader(l.header.Dx())
	uv.NewStyledString(headerStr).Draw(canvas, l.header)

	m.drawBorders(canvas, l)

	listContent := renderPane(l.list, m.list.view(m.focus != focusDetail))
	uv.NewStyledString(listContent).Draw(canvas, l.list)

	detailContent := renderPane(l.detail, m.detail.view())
	uv.NewStyledString(detailContent).Draw(canvas, l.detail)

	// Bottom bar (filter/goto/status/hints)
	var bottom string
	switch {
	case m.focus == focusFilter:
		bottom = m.filterBar.view()
	case m.focus == focusGoto:
		bottom = m.gotoBar.view()
	case m.filterBar.isFiltering():
		// Persistent filter indicator when filter is active but not focused
		bottom = m.renderFilterIndicator()
	case m.status.current != nil:
		bottom = m.status.view()
	default:
		bottom = m.renderHintBar()
	}
	uv.NewStyledString(bottom).Draw(canvas, l.bottom)
}

func (m model) renderHeader(width int) string {
	brand := styles.Header.Brand.Render("recview")
	diag := styles.Header.Diagonal.Render(" " + strings.Repeat(DiagFill, 3) + " ")
	path := styles.Value.Render(m.cfg.path)

	// Visible window summary on the right
	right := styles.Label.Render(fmt.Sprintf("rows %d-%d of %d",
		m.visible.Start, m.visible.End, m.list.len()))
	if m.cfg.follow {
		right = styles.Status.SuccessMsg.Render("follow") + "  " + right
	}

	leftPart := " " + brand + diag + path
	leftW := lipgloss.Width(leftPart)
	rightW := lipgloss.Width(right)

	gap := width - leftW - rightW - 2
	if gap < 1 {
		gap = 1
	}

	line := leftPart + strings.Repeat(" ", gap) + right + " "
	return styles.Header.Bar.Width(width).Render(line)
}

// renderHintBar builds the two-line grouped keybind hints for the
// bottom bar, with record stats right-aligned on line 1.
func (m model) renderHintBar() string {
	ks := styles.Value.Bold(true)
	ds := styles.Label
	sep := styles.Help.Sep.Render(" │ ")

	h := func(key, desc string) string {
		return ks.Render(key) + " " + ds.Render(desc)
	}

	// Line 1: navigation and viewing
	line1 := h("↑↓", "nav") + "  " +
		h(":", "goto") + "  " +
		h("f", "filter") + "  " +
		h("e", "expand") + "  " +
		h("y", "copy")

	statsText := styles.Label.Render(m.stats)
	line1W := lipgloss.Width(line1)
	statsW := lipgloss.Width(statsText)
	if gap := m.width - 2 - line1W - statsW; gap > 0 {
		line1 += strings.Repeat(" ", gap) + statsText
	}

	// Line 2: meta
	line2 := h("tab", "focus") + "  " +
		h("r", "reload") +
		sep +
		h("?", "help") + "  " +
		h("q", "quit")

	return line1 + "\n" + line2
}

// renderFilterIndicator shows the active filter expression and match
// count when the filter bar is not focused.
func (m model) renderFilterIndicator() string {
	f := m.filterBar.filter
	line1 := styles.Prompt.Render("f ") +
		styles.Value.Render(f.expr) +
		styles.Status.SuccessMsg.Render("  "+matchBadge(f.matchCount))

	line2 := m.renderHintBar()
	// Take only the first line of the hint bar
	if idx := strings.Index(line2, "\n"); idx >= 0 {
		line2 = line2[:idx]
	}
	return line1 + "\n" + line2
}

// renderPane wraps content in the standard pane style sized to the given rect.
func renderPane(rect image.Rectangle, content string) string {
	return styles.Pane.
		Width(rect.Dx()).
		Height(rect.Dy()).
		Render(content)
}

// drawBorders renders thin box-drawing borders around the two panes.
// The border is grey by default and yellow for the focused section.
func (m model) drawBorders(canvas uv.ScreenBuffer, l appLayout) {
	active := m.activePaneID()

	topY := l.list.Min.Y - 1  // row above content
	botY := l.list.Max.Y      // row below content
	leftX := l.list.Min.X - 1 // column left of list (= 0)
	rightX := l.detail.Max.X  // column right of detail pane
	midX := l.sep.Min.X       // shared vertical border column

	// Guard against degenerate layouts
	if botY <= topY || midX <= leftX+1 || rightX <= midX+1 {
		return
	}

	styleFor := func(panes ...paneID) lipgloss.Style {
		for _, p := range panes {
			if p == active {
				return borderYellow
			}
		}
		return borderGrey
	}

	ch := func(s string, panes ...paneID) string {
		return styleFor(panes...).Render(s)
	}

	// Top border: ┌───┬───┐
	topLine := ch("┌", paneList) +
		styleFor(paneList).Render(strings.Repeat("─", midX-leftX-1)) +
		ch("┬", paneList, paneDetail) +
		styleFor(paneDetail).Render(strings.Repeat("─", rightX-midX-1)) +
		ch("┐", paneDetail)
	uv.NewStyledString(topLine).Draw(canvas, image.Rect(leftX, topY, rightX+1, topY+1))

	// Bottom border: └───┴───┘
	botLine := ch("└", paneList) +
		styleFor(paneList).Render(strings.Repeat("─", midX-leftX-1)) +
		ch("┴", paneList, paneDetail) +
		styleFor(paneDetail).Render(strings.Repeat("─", rightX-midX-1)) +
		ch("┘", paneDetail)
	uv.NewStyledString(botLine).Draw(canvas, image.Rect(leftX, botY, rightX+1, botY+1))

	drawVerticalBorder(canvas, leftX, topY+1, botY, styleFor(paneList))
	drawVerticalBorder(canvas, midX, topY+1, botY, styleFor(paneList, paneDetail))
	drawVerticalBorder(canvas, rightX, topY+1, botY, styleFor(paneDetail))
}

// drawVerticalBorder draws │ characters in a column from startY (inclusive) to endY (exclusive).
func drawVerticalBorder(canvas uv.ScreenBuffer, x, startY, endY int, style lipgloss.Style) {
	h := endY - startY
	if h <= 0 {
		return
	}
	var b strings.Builder
	ch := style.Render("│")
	for i := range h {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ch)
	}
	uv.NewStyledString(b.String()).Draw(canvas, image.Rect(x, startY, x+1, endY))
}

// renderFullHelp builds the help overlay from the key map's groups.
func renderFullHelp(k keyMap) string {
	hdr := styles.Header.Info
	ks := styles.Value.Bold(true)
	ds := styles.Label

	titles := []string{"Navigation", "Viewing", "Meta"}

	var b strings.Builder
	for gi, group := range k.FullHelp() {
		if gi > 0 {
			b.WriteString("\n")
		}
		title := "Other"
		if gi < len(titles) {
			title = titles[gi]
		}
		b.WriteString(hdr.Render(title))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString("  " + ks.Render(padRight(h.Key, 8)) + "  " + ds.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
