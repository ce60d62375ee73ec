package ui

import (
	"github.com/atomicstack/estate-finder/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.quit("ctrl+c")
	case "tab", "ctrl+right":
		m.cycleDistrict(1)
		return nil
	case "shift+tab", "ctrl+left":
		m.cycleDistrict(-1)
		return nil
	case "ctrl+n":
		m.cyclePianqu(1)
		return nil
	case "ctrl+p":
		m.cyclePianqu(-1)
		return nil
	case "up":
		m.moveCursor(m.list.MoveCursorUp)
		return nil
	case "down":
		m.moveCursor(m.list.MoveCursorDown)
		return nil
	case "pgup":
		m.moveCursor(func() bool { return m.list.MoveCursorPageUp(m.maxVisibleItems()) })
		return nil
	case "pgdown":
		m.moveCursor(func() bool { return m.list.MoveCursorPageDown(m.maxVisibleItems()) })
		return nil
	case "home":
		m.moveCursor(m.list.MoveCursorHome)
		return nil
	case "end":
		m.moveCursor(m.list.MoveCursorEnd)
		return nil
	}
	if m.ctrl.State().SearchFocused {
		return m.handleFocusedKey(keyMsg)
	}
	return m.handleBrowseKey(keyMsg)
}

func (m *Model) handleFocusedKey(msg tea.KeyMsg) tea.Cmd {
	if m.handleTextInput(msg) {
		return nil
	}
	switch msg.String() {
	case "esc":
		if !m.clearSearch() {
			m.blurSearch()
		}
	case "enter":
		m.blurSearch()
	}
	return nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		return m.quit(msg.String())
	case "/", "enter":
		return m.focusSearch()
	case "x":
		m.clearSearch()
	case "]":
		m.cyclePianqu(1)
	case "[":
		m.cyclePianqu(-1)
	case "l":
		m.cycleDistrict(1)
	case "h":
		m.cycleDistrict(-1)
	case "j":
		m.moveCursor(m.list.MoveCursorDown)
	case "k":
		m.moveCursor(m.list.MoveCursorUp)
	case "g":
		m.moveCursor(m.list.MoveCursorHome)
	case "G":
		m.moveCursor(m.list.MoveCursorEnd)
	}
	return nil
}

func (m *Model) quit(reason string) tea.Cmd {
	events.UI.Quit(reason)
	m.quitting = true
	return tea.Quit
}

// cycleDistrict moves the district tab selection by delta, wrapping around.
func (m *Model) cycleDistrict(delta int) bool {
	districts := m.ctrl.Districts()
	next, ok := cycle(districts, m.ctrl.State().District, delta)
	if !ok {
		return false
	}
	if !m.ctrl.SelectDistrict(next) {
		return false
	}
	events.Lookup.District(next)
	m.syncFromController()
	return true
}

// cyclePianqu walks the sub-district selector, where "" is the unselected
// placeholder entry ahead of the district's sub-districts.
func (m *Model) cyclePianqu(delta int) bool {
	options := append([]string{""}, m.ctrl.Pianqus()...)
	next, ok := cycle(options, m.ctrl.State().Pianqu(), delta)
	if !ok {
		return false
	}
	if !m.ctrl.SelectPianqu(next) {
		return false
	}
	events.Lookup.Pianqu(m.ctrl.State().District, next)
	m.syncFromController()
	return true
}

func cycle(options []string, current string, delta int) (string, bool) {
	n := len(options)
	if n == 0 || delta == 0 {
		return "", false
	}
	idx := -1
	for i, option := range options {
		if option == current {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = n - 1
	default:
		next = ((idx+delta)%n + n) % n
	}
	return options[next], true
}

func (m *Model) moveCursor(move func() bool) {
	if !move() {
		return
	}
	m.syncViewport()
	events.UI.ResultCursor(m.list.Cursor)
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}
