package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/estate-finder/internal/format/table"
	"github.com/atomicstack/estate-finder/internal/lookup"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	searchPlaceholder  = "type an estate name (e.g. 华润)"
	pianquPlaceholder  = "-- choose a sub-district --"
	idleMessage        = "Choose a sub-district or type a keyword to search"
	tooShortMessage    = "Enter at least 1 character to search"
	noResultsMessage   = "No matching estates in this district"
	noResultsHint      = "Try another district or a shorter keyword"
	noDistrictsMessage = "(no districts available)"
	footerHintsBrowse  = "/ search  [ ] sub-district  tab district  ↑/↓ move  q quit"
	footerHintsSearch  = "enter done  esc clear  ctrl+n/p sub-district  tab district  ctrl+c quit"
	resultIndicator    = "▌"
)

// Rows outside the result list: blank separator + heading, and blank + hints
// for the footer.
const (
	resultChromeRows   = 2
	footerReservedRows = 2
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := m.chromeLines()
	lines = append(lines, styledLine{})
	lines = append(lines, m.resultLines()...)
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// chromeLines renders everything above the result panel: title, optional
// subtitle, district tabs, district summary, search field, and sub-district
// selector.
func (m *Model) chromeLines() []styledLine {
	st := m.ctrl.State()
	lines := make([]styledLine, 0, 6)
	lines = append(lines, styledLine{text: styles.Title.Render(m.title), raw: true})
	if m.subtitle != "" {
		lines = append(lines, m.subtitleLine())
	}
	lines = append(lines, m.districtTabsLine())
	if st.District != "" {
		summary := styles.Label.Render("district: ") + styles.Selector.Render(st.District) +
			"  " + styles.Badge.Render(fmt.Sprintf(" %d sub-districts ", m.ctrl.PianquCount()))
		lines = append(lines, styledLine{text: summary, raw: true})
	}
	lines = append(lines, styledLine{text: m.searchPrompt(), raw: true})
	lines = append(lines, styledLine{text: m.pianquSelector(), raw: true})
	return lines
}

// chromeRowCount mirrors chromeLines without rendering it.
func (m *Model) chromeRowCount() int {
	rows := 4 // title, tabs, search, sub-district
	if m.subtitle != "" {
		rows++
	}
	if m.ctrl.State().District != "" {
		rows++
	}
	return rows
}

func (m *Model) subtitleLine() styledLine {
	n := len(m.ctrl.Districts())
	count := fmt.Sprintf("  %d districts", n)
	if n == 1 {
		count = "  1 district"
	}
	return styledLine{text: styles.Subtitle.Render(m.subtitle) + styles.Info.Render(count), raw: true}
}

func (m *Model) districtTabsLine() styledLine {
	districts := m.ctrl.Districts()
	if len(districts) == 0 {
		return styledLine{text: noDistrictsMessage, style: styles.Empty}
	}
	current := m.ctrl.State().District
	tabs := make([]string, len(districts))
	for i, d := range districts {
		if d == current {
			tabs[i] = styles.ActiveTab.Render(d)
		} else {
			tabs[i] = styles.Tab.Render(d)
		}
	}
	return styledLine{text: strings.Join(tabs, " "), raw: true}
}

func (m *Model) pianquSelector() string {
	label := styles.Label.Render("sub-district: ")
	if pianqu := m.ctrl.State().Pianqu(); pianqu != "" {
		return label + styles.Selector.Render(pianqu)
	}
	return label + styles.SelectorPlaceholder.Render(pianquPlaceholder)
}

func (m *Model) resultLines() []styledLine {
	switch m.ctrl.Display() {
	case lookup.DisplaySearchTooShort:
		return []styledLine{{text: tooShortMessage, style: styles.Notice}}
	case lookup.DisplayNoResults:
		return []styledLine{
			{text: noResultsMessage, style: styles.Empty},
			{text: noResultsHint, style: styles.Hint},
		}
	case lookup.DisplayResults:
		return m.resultListLines()
	default:
		return []styledLine{{text: idleMessage, style: styles.Empty}}
	}
}

func (m *Model) resultListLines() []styledLine {
	m.syncViewport()
	lines := make([]styledLine, 0, len(m.list.Items)+1)
	lines = append(lines, styledLine{text: m.ctrl.Heading(), style: styles.ResultsHeader})

	district := m.ctrl.State().District
	allRows := resultRows(m.list.Items, district)
	widths := table.ColumnWidths(allRows)
	maxVisible := m.maxVisibleItems()
	visible := m.list.Visible(maxVisible)
	start := 0
	if maxVisible > 0 && len(m.list.Items) > maxVisible {
		start = m.list.ViewportOffset
	}
	aligned := table.FormatWithWidths(resultRows(visible, district), nil, widths)
	for i, row := range aligned {
		lines = append(lines, m.buildItemLine(row, start+i, m.width))
	}
	return lines
}

func resultRows(items []lookup.Item, district string) [][]string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{item.EstateName, item.PianquName, district}
	}
	return rows
}

// buildItemLine constructs a single styledLine for a result row.
// width is the target column width; when > 0 the text is padded so that
// the selected row's background spans the full container.
func (m *Model) buildItemLine(row string, idx int, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.list.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := resultIndicator + " " + strings.TrimRight(row, " ")
	if width > 0 {
		if pad := width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) footerText() string {
	if m.ctrl.State().SearchFocused {
		return footerHintsSearch
	}
	return footerHintsBrowse
}

// searchPrompt renders the search field. The caret is drawn only while the
// field is focused; a non-empty field shows how to clear it.
func (m *Model) searchPrompt() string {
	focused := m.ctrl.State().SearchFocused
	promptStyle := styles.SearchPrompt
	if focused {
		promptStyle = styles.SearchPromptFocused
	}
	prompt := promptStyle.Render("search » ")
	text := m.query.Text
	if text == "" {
		if !focused {
			return prompt + styles.SearchPlaceholder.Render(searchPlaceholder)
		}
		runes := []rune(searchPlaceholder)
		m.searchCursor.TextStyle = *styles.SearchPlaceholder
		caret := m.renderSearchCursor(string(runes[0]))
		return prompt + caret + styles.SearchPlaceholder.Render(string(runes[1:]))
	}
	m.searchCursor.TextStyle = *styles.Search
	clearHint := styles.Hint.Render("  (x clears)")
	if focused {
		clearHint = styles.Hint.Render("  (esc clears)")
	}
	if !focused {
		return prompt + styles.Search.Render(text) + clearHint
	}
	runes := []rune(text)
	pos := m.query.CursorPos()
	before := styles.Search.Render(string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = styles.Search.Render(string(runes[pos+1:]))
	}
	return prompt + before + m.renderSearchCursor(caretRune) + after + clearHint
}

func (m *Model) renderSearchCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)

	base := m.searchCursor.TextStyle.Inline(true)
	if m.searchCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

// maxVisibleItems is the number of result rows that fit under the chrome.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := m.chromeRowCount() + resultChromeRows
	if m.showFooter {
		used += footerReservedRows
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width terminal cells, so wide CJK runes count twice.
func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
