package ui

import (
	"unicode"

	"github.com/atomicstack/estate-finder/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

func (m *Model) noteSearchCursorChange(before int) {
	if before != m.query.CursorPos() {
		m.searchCursorDirty = true
	}
}

// handleTextInput edits the search text while the field is focused.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if !m.ctrl.State().SearchFocused {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		return m.clearSearch()
	case "ctrl+w":
		before := m.query.CursorPos()
		if !m.query.DeleteWordBackward() {
			return false
		}
		m.noteSearchCursorChange(before)
		m.pushSearch()
		events.Search.WordBackspace(m.ctrl.State().District, m.query.Text)
		return true
	case "ctrl+a":
		return m.moveSearchCursor(m.query.MoveStart, false)
	case "ctrl+e":
		return m.moveSearchCursor(m.query.MoveEnd, false)
	case "alt+b":
		return m.moveSearchCursor(m.query.MoveWordBackward, true)
	case "alt+f":
		return m.moveSearchCursor(m.query.MoveWordForward, true)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeSearchRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToSearch(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToSearch(" ")
	case tea.KeyLeft:
		return m.moveSearchCursor(m.query.MoveRuneBackward, false)
	case tea.KeyRight:
		return m.moveSearchCursor(m.query.MoveRuneForward, false)
	}
	return false
}

func (m *Model) moveSearchCursor(move func() bool, word bool) bool {
	before := m.query.CursorPos()
	if !move() {
		return false
	}
	m.noteSearchCursorChange(before)
	if word {
		events.Search.CursorWord(m.query.Cursor)
	} else {
		events.Search.Cursor(m.query.Cursor)
	}
	return true
}

func (m *Model) appendToSearch(text string) bool {
	before := m.query.CursorPos()
	if !m.query.Insert(text) {
		return false
	}
	m.noteSearchCursorChange(before)
	m.pushSearch()
	events.Search.Append(m.ctrl.State().District, m.query.Text)
	return true
}

func (m *Model) removeSearchRune() bool {
	before := m.query.CursorPos()
	if !m.query.DeleteRuneBackward() {
		return false
	}
	m.noteSearchCursorChange(before)
	m.pushSearch()
	events.Search.Backspace(m.ctrl.State().District, m.query.Text)
	return true
}

// clearSearch is the explicit clear action; a selected sub-district survives.
func (m *Model) clearSearch() bool {
	if m.query.Text == "" && m.ctrl.State().SearchText() == "" {
		return false
	}
	before := m.query.CursorPos()
	m.query.Reset()
	m.noteSearchCursorChange(before)
	m.ctrl.ClearSearch()
	m.syncFromController()
	events.Search.Cleared(m.ctrl.State().District)
	return true
}

// pushSearch forwards the whole buffer to the controller, like a change event.
func (m *Model) pushSearch() {
	m.ctrl.SetSearch(m.query.Text)
	m.syncFromController()
}

func (m *Model) focusSearch() tea.Cmd {
	if !m.ctrl.Focus() {
		return nil
	}
	events.Search.Focus(true)
	m.searchCursorDirty = true
	return m.searchCursor.Focus()
}

func (m *Model) blurSearch() {
	if !m.ctrl.Blur() {
		return
	}
	events.Search.Focus(false)
	m.searchCursor.Blur()
}
