package ui

import (
	"reflect"

	"github.com/atomicstack/estate-finder/internal/logging/events"
	"github.com/atomicstack/estate-finder/internal/lookup"
	"github.com/atomicstack/estate-finder/internal/theme"
	uistate "github.com/atomicstack/estate-finder/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitle = "Estate Finder"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the estate finder.
type Model struct {
	ctrl              *lookup.Controller
	query             uistate.Query
	list              *uistate.List
	title             string
	subtitle          string
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	searchCursor      cursor.Model
	searchCursorDirty bool
	lastDisplay       lookup.Display
	lastCount         int
	quitting          bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps a lookup controller in a Bubble Tea model. Positive width
// and height pin the viewport instead of following terminal resizes.
func NewModel(ctrl *lookup.Controller, width, height int, showFooter bool) *Model {
	if ctrl == nil {
		ctrl = lookup.New(nil, "")
	}
	m := &Model{
		ctrl:        ctrl,
		list:        uistate.NewList(),
		title:       defaultTitle,
		showFooter:  showFooter,
		lastDisplay: ctrl.Display(),
		lastCount:   len(ctrl.Results()),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Search != nil {
		c.TextStyle = *styles.Search
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.syncFromController()
	m.registerHandlers()
	return m
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// SeedSize sizes a viewport dimension that is neither pinned nor yet
// reported by the terminal. Non-positive values are ignored.
func (m *Model) SeedSize(width, height int) {
	if width > 0 && !m.fixedWidth && m.width == 0 {
		m.width = width
	}
	if height > 0 && !m.fixedHeight && m.height == 0 {
		m.height = height
	}
	m.syncViewport()
}

// SetSubtitle sets the line shown under the title, such as when the data
// was last updated. An empty subtitle hides the line.
func (m *Model) SetSubtitle(subtitle string) {
	m.subtitle = subtitle
	m.syncViewport()
}

// Controller exposes the underlying lookup controller.
func (m *Model) Controller() *lookup.Controller {
	return m.ctrl
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if !m.ctrl.State().SearchFocused {
		return nil
	}
	return m.searchCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursorDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// syncFromController pulls search text and results back from the controller
// after an event. District and sub-district changes clear the search there,
// so the query buffer follows rather than leads in that case.
func (m *Model) syncFromController() {
	st := m.ctrl.State()
	if text := st.SearchText(); text != m.query.Text {
		before := m.query.CursorPos()
		m.query.Set(text, len([]rune(text)))
		m.noteSearchCursorChange(before)
	}
	results := m.ctrl.Results()
	m.list.Update(results)
	if display := m.ctrl.Display(); display != m.lastDisplay || len(results) != m.lastCount {
		m.lastDisplay = display
		m.lastCount = len(results)
		events.Lookup.Results(display.String(), len(results))
	}
	m.syncViewport()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncViewport()
	return nil
}
