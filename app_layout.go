package main

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/ultraviolet/layout"
)

func (m *model) generateLayout() appLayout {
	area := image.Rect(0, 0, m.width, m.height)

	// 1-cell horizontal margins (left/right border columns drawn here)
	area.Min.X += 1
	area.Max.X -= 1

	// Header bar (1 row)
	headerArea, rest := layout.SplitVertical(area, layout.Fixed(1))

	// Bottom: hint bar / filter / goto / status (2 rows)
	const bottomH = 2
	mainArea, bottomArea := layout.SplitVertical(rest, layout.Fixed(rest.Dy()-bottomH))

	// Reserve 1 row each for top and bottom border lines
	contentArea := mainArea
	contentArea.Min.Y += 1
	contentArea.Max.Y -= 1

	// Left/right split: list | border col (1 col) | detail pane
	listAndSep, detailRect := layout.SplitHorizontal(contentArea, layout.Percent(m.listWidthPct))
	listRect, sepRect := layout.SplitHorizontal(listAndSep, layout.Fixed(listAndSep.Dx()-1))

	return appLayout{
		area:   image.Rect(0, 0, m.width, m.height),
		header: headerArea,
		list:   listRect,
		sep:    sepRect,
		detail: detailRect,
		bottom: bottomArea,
	}
}

// applyLayout pushes computed pane sizes into the sub-models. The list
// recomputes its window on resize and hands back the range
// notification command.
func (m *model) applyLayout(l appLayout) tea.Cmd {
	// Pane styles use Padding(0, 1) = 1 left + 1 right = 2 horizontal cells.
	// Sub-models receive the content-area width (total minus padding).
	const panePad = 2
	cmd := m.list.setSize(max(0, l.list.Dx()-panePad), l.list.Dy())
	m.detail.setSize(max(0, l.detail.Dx()-panePad), l.detail.Dy())
	m.filterBar.width = m.width
	m.gotoBar.width = m.width
	return cmd
}

func (m *model) updateLayout() tea.Cmd {
	l := m.generateLayout()
	m.cachedLayout = l
	return m.applyLayout(l)
}
