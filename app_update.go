package main

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/recview/recview/internal/window"
)

// mouseScrollLines is the number of rows to move per mouse wheel tick.
const mouseScrollLines = 3

// setStatusReturn sets a status message and returns the model with a
// clear-after command.
func (m model) setStatusReturn(typ statusType, text string) (tea.Model, tea.Cmd) {
	return m, m.status.set(typ, text)
}

// handleGlobalKeys handles keys shared by list and detail focus modes.
// Returns (model, cmd, true) if handled, (model, nil, false) if not.
func (m model) handleGlobalKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit, true
	case "?":
		m.overlay.kind = overlayHelp
		return m, nil, true
	case "esc":
		if m.focus == focusDetail {
			m.focus = focusList
		}
		return m, nil, true
	case "f":
		m.focus = focusFilter
		m.filterBar.activate()
		return m, m.filterBar.input.Focus(), true
	case ":":
		m.focus = focusGoto
		m.gotoBar.activate()
		return m, m.gotoBar.input.Focus(), true
	case "y":
		if rec := m.list.selected(); rec != nil {
			return m, copyText(rec.Raw), true
		}
		return m, nil, true
	case "e":
		cmd := m.list.setExpanded(!m.list.isExpanded())
		return m, cmd, true
	case "r":
		return m, reloadCmd(m.cfg.path), true
	case "J":
		m.detail.scrollBy(mouseScrollLines)
		return m, nil, true
	case "K":
		m.detail.scrollBy(-mouseScrollLines)
		return m, nil, true
	case "tab":
		if m.focus == focusList {
			m.focus = focusDetail
		} else {
			m.focus = focusList
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.updateLayout()

	case rangeChangedMsg:
		m.visible = window.Range{Start: msg.start, End: msg.end}
		m.log.Debug("visible range changed",
			"start", msg.start, "end", msg.end, "total", msg.total)
		return m, nil

	case fileChangedMsg:
		return m, reloadCmd(m.cfg.path)

	case recordsLoadedMsg:
		var cmds []tea.Cmd
		if m.watcher != nil {
			cmds = append(cmds, waitChangeCmd(m.watcher))
		}
		if msg.err != nil {
			cmds = append(cmds, m.status.set(statusError, "Reload: "+msg.err.Error()))
			return m, tea.Batch(cmds...)
		}
		m.all = msg.records
		m.stats = fmt.Sprintf("%d records", len(msg.records))
		m.filterBar.setFieldKeys(collectFieldKeys(msg.records))
		cmds = append(cmds,
			m.applyFilter(),
			m.status.set(statusInfo, fmt.Sprintf("Loaded %d records", len(msg.records))),
		)
		return m, tea.Batch(cmds...)

	case statusMsg:
		m.status.current = &msg
		return m, clearStatusAfter(statusDisplayDuration)

	case clearStatusMsg:
		m.status.current = nil
		return m, nil

	case tea.MouseWheelMsg:
		if m.overlay.isDialog() {
			return m, nil
		}
		return m.handleMouseWheel(msg)

	case tea.MouseClickMsg:
		if m.overlay.isDialog() {
			return m, nil
		}
		return m.handleMouseClick(msg)

	case tea.KeyPressMsg:
		// Help overlay swallows all keys except dismiss
		if m.overlay.kind == overlayHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.overlay.kind = overlayNone
			}
			return m, nil
		}

		// Filter help overlay: dismiss and restore filter focus
		if m.overlay.kind == overlayFilterHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.overlay.kind = overlayNone
				m.focus = focusFilter
				return m, m.filterBar.input.Focus()
			}
			return m, nil
		}

		// Global keys shared by list and detail
		if m.focus == focusList || m.focus == focusDetail {
			if ret, retCmd, handled := m.handleGlobalKeys(msg); handled {
				return ret, retCmd
			}
		}

		// Focus-specific dispatch
		switch m.focus {
		case focusList:
			return m.updateList(msg)
		case focusDetail:
			return m.updateDetail(msg)
		case focusFilter:
			return m.updateFilter(msg)
		case focusGoto:
			return m.updateGoto(msg)
		}
	}
	return m, nil
}

func (m model) updateList(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "j", "down":
		cmd = m.list.cursorBy(1)
	case "k", "up":
		cmd = m.list.cursorBy(-1)
	case "ctrl+d", "pgdown":
		cmd = m.list.pageBy(1)
	case "ctrl+u", "pgup":
		cmd = m.list.pageBy(-1)
	case "g", "home":
		cmd = m.list.goTop()
	case "G", "end":
		cmd = m.list.goBottom()
	}

	m.syncSelection()
	return m, cmd
}

func (m model) updateDetail(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.detail.scrollBy(1)
	case "k", "up":
		m.detail.scrollBy(-1)
	case "ctrl+d", "pgdown":
		m.detail.scrollBy(m.detail.height / 2)
	case "ctrl+u", "pgup":
		m.detail.scrollBy(-(m.detail.height / 2))
	case "g", "home":
		m.detail.goTop()
	case "G", "end":
		m.detail.goBottom()
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.filterBar.input.Value() != "" {
			// Clear filter, stay in filter bar
			m.filterBar.clear()
			return m, m.applyFilter()
		}
		// Empty input, deactivate and return to list
		m.filterBar.deactivate()
		m.focus = focusList
		return m, nil
	case "enter":
		// Accept filter (stays active), return to list
		m.filterBar.deactivate()
		m.focus = focusList
		return m, nil
	case "?":
		m.overlay.kind = overlayFilterHelp
		return m, nil
	case "tab":
		m.filterBar.tabComplete()
		return m, nil
	}

	// Forward to text input, recompile and re-filter live
	var cmd tea.Cmd
	m.filterBar.input, cmd = m.filterBar.input.Update(msg)
	m.filterBar.resetCompletion()
	m.filterBar.recompile()
	return m, tea.Batch(cmd, m.applyFilter())
}

func (m model) updateGoto(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.gotoBar.deactivate()
		m.focus = focusList
		return m, nil
	case "enter":
		index, ok := m.gotoBar.parse()
		if !ok {
			// Parse error stays visible in the bar; empty input just closes
			if m.gotoBar.err != "" {
				return m, nil
			}
			m.gotoBar.deactivate()
			m.focus = focusList
			return m, nil
		}
		cmd := m.list.scrollToIndex(index)
		m.syncSelection()
		m.gotoBar.deactivate()
		m.focus = focusList
		return m, cmd
	}

	// Forward to text input
	var cmd tea.Cmd
	m.gotoBar.input, cmd = m.gotoBar.input.Update(msg)
	return m, cmd
}

func (m model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	pt := image.Pt(msg.X, msg.Y)
	dir := 0
	switch msg.Button {
	case tea.MouseWheelDown:
		dir = 1
	case tea.MouseWheelUp:
		dir = -1
	default:
		return m, nil
	}

	if pt.In(m.cachedLayout.detail) {
		m.detail.scrollBy(dir * mouseScrollLines)
		return m, nil
	}
	cmd := m.list.scrollBy(float64(dir * mouseScrollLines))
	m.syncSelection()
	return m, cmd
}

func (m model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	pt := image.Pt(msg.X, msg.Y)

	if pt.In(m.cachedLayout.detail) {
		m.focus = focusDetail
		return m, nil
	}
	if pt.In(m.cachedLayout.list) {
		m.focus = focusList
		row := pt.Y - m.cachedLayout.list.Min.Y
		index := int((m.list.offset + float64(row)) / m.list.itemH)
		if index >= 0 && index < m.list.len() {
			cmd := m.list.setCursor(index)
			m.syncSelection()
			return m, cmd
		}
	}
	return m, nil
}
