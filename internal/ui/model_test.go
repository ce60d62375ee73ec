package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/estate-finder/internal/dataset"
	"github.com/atomicstack/estate-finder/internal/lookup"
	tea "github.com/charmbracelet/bubbletea"
)

func sampleDataset() *dataset.Dataset {
	return dataset.New([]dataset.District{
		{Name: "A", Records: []dataset.Record{
			{Name: "P1", Estates: []string{"Lakeview", "Lakeside"}},
			{Name: "P2", Estates: []string{"Hilltop"}},
		}},
		{Name: "B", Records: []dataset.Record{
			{Name: "Q1", Estates: []string{"Lakefront"}},
		}},
	})
}

func newTestHarness(district string) *Harness {
	ctrl := lookup.New(sampleDataset(), district)
	return NewHarness(NewModel(ctrl, 80, 24, false))
}

func TestNewModelSelectsDefaultDistrict(t *testing.T) {
	h := newTestHarness("B")
	st := h.Model().Controller().State()
	if st.District != "B" {
		t.Fatalf("expected district B, got %q", st.District)
	}
	if st.SearchFocused {
		t.Fatalf("expected search to start unfocused")
	}
	if got := h.Model().Controller().Display(); got != lookup.DisplayIdle {
		t.Fatalf("expected idle display, got %s", got)
	}
}

func TestNewModelFallsBackToFirstDistrict(t *testing.T) {
	h := newTestHarness("missing")
	if got := h.Model().Controller().State().District; got != "A" {
		t.Fatalf("expected first district A, got %q", got)
	}
}

func TestTypingSearchesCurrentDistrict(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("LAKE")
	ctrl := h.Model().Controller()
	if got := ctrl.State().SearchText(); got != "LAKE" {
		t.Fatalf("expected search text LAKE, got %q", got)
	}
	results := ctrl.Results()
	if len(results) != 2 {
		t.Fatalf("expected two results, got %#v", results)
	}
	for _, item := range results {
		if item.MatchType != lookup.MatchSearch {
			t.Fatalf("expected search matches, got %#v", item)
		}
	}
}

func TestTypingIgnoredWhenSearchUnfocused(t *testing.T) {
	h := newTestHarness("A")
	h.Type("z")
	if got := h.Model().Controller().State().SearchText(); got != "" {
		t.Fatalf("expected no search text while unfocused, got %q", got)
	}
}

func TestDistrictCycleResetsSearch(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("lake")
	h.Key("tab")
	st := h.Model().Controller().State()
	if st.District != "B" {
		t.Fatalf("expected district B after tab, got %q", st.District)
	}
	if st.SearchText() != "" || st.Pianqu() != "" {
		t.Fatalf("expected search and sub-district reset, got %#v", st)
	}
	if h.Model().query.Text != "" {
		t.Fatalf("expected query buffer cleared, got %q", h.Model().query.Text)
	}
	if got := h.Model().Controller().Display(); got != lookup.DisplayIdle {
		t.Fatalf("expected idle display, got %s", got)
	}

	h.Key("shift+tab")
	if got := h.Model().Controller().State().District; got != "A" {
		t.Fatalf("expected shift+tab back to A, got %q", got)
	}
	h.Key("shift+tab")
	if got := h.Model().Controller().State().District; got != "B" {
		t.Fatalf("expected wraparound to B, got %q", got)
	}
}

func TestPianquCycleClearsSearch(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("hill")
	h.Key("ctrl+n")
	ctrl := h.Model().Controller()
	st := ctrl.State()
	if st.Pianqu() != "P1" {
		t.Fatalf("expected sub-district P1, got %q", st.Pianqu())
	}
	if st.SearchText() != "" || h.Model().query.Text != "" {
		t.Fatalf("expected search cleared, got %q / %q", st.SearchText(), h.Model().query.Text)
	}
	if got := ctrl.Heading(); got != "P1 all estates (2)" {
		t.Fatalf("unexpected heading %q", got)
	}

	h.Key("ctrl+n")
	if got := ctrl.State().Pianqu(); got != "P2" {
		t.Fatalf("expected P2, got %q", got)
	}
	h.Key("ctrl+n")
	if got := ctrl.State().Pianqu(); got != "" {
		t.Fatalf("expected placeholder after P2, got %q", got)
	}
	if got := ctrl.Display(); got != lookup.DisplayIdle {
		t.Fatalf("expected idle after deselecting, got %s", got)
	}
	h.Key("ctrl+p")
	if got := ctrl.State().Pianqu(); got != "P2" {
		t.Fatalf("expected ctrl+p to wrap to P2, got %q", got)
	}
}

func TestSearchAfterPianquClearsSelection(t *testing.T) {
	h := newTestHarness("A")
	h.Key("]")
	if got := h.Model().Controller().State().Pianqu(); got != "P1" {
		t.Fatalf("expected P1, got %q", got)
	}
	h.Key("/")
	h.Type("h")
	st := h.Model().Controller().State()
	if st.Pianqu() != "" {
		t.Fatalf("expected typing to clear sub-district, got %q", st.Pianqu())
	}
	if results := h.Model().Controller().Results(); len(results) != 1 || results[0].EstateName != "Hilltop" {
		t.Fatalf("expected Hilltop only, got %#v", results)
	}
}

func TestEscClearsThenBlursThenQuits(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("lake")
	h.Key("esc")
	st := h.Model().Controller().State()
	if st.SearchText() != "" {
		t.Fatalf("expected esc to clear search, got %q", st.SearchText())
	}
	if !st.SearchFocused {
		t.Fatalf("expected search to stay focused after clearing")
	}
	h.Key("esc")
	if h.Model().Controller().State().SearchFocused {
		t.Fatalf("expected second esc to blur search")
	}
	if h.Quit() {
		t.Fatalf("did not expect quit yet")
	}
	h.Key("esc")
	if !h.Quit() {
		t.Fatalf("expected esc in browse mode to quit")
	}
	if view := h.View(); view != "" {
		t.Fatalf("expected empty view after quit, got %q", view)
	}
}

func TestClearKeyInBrowseMode(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("lake")
	h.Key("enter")
	if h.Model().Controller().State().SearchFocused {
		t.Fatalf("expected enter to blur search")
	}
	h.Key("x")
	if got := h.Model().Controller().State().SearchText(); got != "" {
		t.Fatalf("expected x to clear search, got %q", got)
	}
	if got := h.Model().Controller().Display(); got != lookup.DisplayIdle {
		t.Fatalf("expected idle after clear, got %s", got)
	}
}

func TestQueryKeysDoNotQuitWhileFocused(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("q")
	if h.Quit() {
		t.Fatalf("expected q to be typed, not quit")
	}
	if got := h.Model().query.Text; got != "q" {
		t.Fatalf("expected query q, got %q", got)
	}
	h.Key("ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestBackspaceToEmptyReturnsIdle(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("l")
	h.Key("backspace")
	if got := h.Model().Controller().Display(); got != lookup.DisplayIdle {
		t.Fatalf("expected idle after erasing search, got %s", got)
	}
}

func TestResultCursorMovement(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("lake")
	list := h.Model().list
	if list.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", list.Cursor)
	}
	h.Key("down")
	if list.Cursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", list.Cursor)
	}
	h.Key("down")
	if list.Cursor != 1 {
		t.Fatalf("expected cursor to stop at last row, got %d", list.Cursor)
	}
	h.Key("home")
	if list.Cursor != 0 {
		t.Fatalf("expected home to reset cursor, got %d", list.Cursor)
	}
	h.Type("s")
	if list.Cursor != 0 || len(list.Items) != 1 {
		t.Fatalf("expected refreshed single result, got cursor %d items %#v", list.Cursor, list.Items)
	}
}

func TestWindowSizeFollowsTerminal(t *testing.T) {
	h := NewHarness(NewModel(lookup.New(sampleDataset(), ""), 0, 0, false))
	h.Send(tea.WindowSizeMsg{Width: 50, Height: 12})
	if h.Model().width != 50 || h.Model().height != 12 {
		t.Fatalf("expected 50x12, got %dx%d", h.Model().width, h.Model().height)
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	h := newTestHarness("A")
	h.Send(tea.WindowSizeMsg{Width: 50, Height: 12})
	if h.Model().width != 80 || h.Model().height != 24 {
		t.Fatalf("expected fixed 80x24, got %dx%d", h.Model().width, h.Model().height)
	}
}

func TestViewportScrollsWithCursor(t *testing.T) {
	estates := make([]string, 20)
	for i := range estates {
		estates[i] = fmt.Sprintf("estate-%02d", i)
	}
	ds := dataset.New([]dataset.District{{Name: "A", Records: []dataset.Record{{Name: "P1", Estates: estates}}}})
	h := NewHarness(NewModel(lookup.New(ds, "A"), 60, 10, false))
	h.Key("]")
	if got := h.Model().maxVisibleItems(); got != 3 {
		t.Fatalf("expected three visible rows, got %d", got)
	}
	h.Key("end")
	list := h.Model().list
	if list.Cursor != 19 || list.ViewportOffset != 17 {
		t.Fatalf("expected cursor 19 offset 17, got %d/%d", list.Cursor, list.ViewportOffset)
	}
	view := h.View()
	if !strings.Contains(view, "estate-19") {
		t.Fatalf("expected last estate visible, got:\n%s", view)
	}
	if strings.Contains(view, "estate-00") {
		t.Fatalf("expected first estate scrolled away, got:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines > 10 {
		t.Fatalf("expected view to fit 10 rows, got %d", lines)
	}
}

func TestCycleHelper(t *testing.T) {
	options := []string{"", "a", "b"}
	cases := []struct {
		current string
		delta   int
		want    string
	}{
		{"", 1, "a"},
		{"b", 1, ""},
		{"", -1, "b"},
		{"gone", 1, ""},
		{"gone", -1, "b"},
	}
	for _, tc := range cases {
		got, ok := cycle(options, tc.current, tc.delta)
		if !ok || got != tc.want {
			t.Fatalf("cycle(%q, %d) = %q, %v; want %q", tc.current, tc.delta, got, ok, tc.want)
		}
	}
	if _, ok := cycle(nil, "", 1); ok {
		t.Fatalf("expected no option from empty list")
	}
}

func TestSeedSizeOnlyFillsUnsetDimensions(t *testing.T) {
	m := NewModel(lookup.New(sampleDataset(), "A"), 0, 0, false)
	m.SeedSize(120, 40)
	if m.width != 120 || m.height != 40 {
		t.Fatalf("expected seeded 120x40, got %dx%d", m.width, m.height)
	}
	m.handleWindowSizeMsg(tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.width != 90 || m.height != 30 {
		t.Fatalf("expected terminal size to replace seed, got %dx%d", m.width, m.height)
	}

	pinned := NewModel(lookup.New(sampleDataset(), "A"), 80, 0, false)
	pinned.SeedSize(120, 40)
	if pinned.width != 80 || pinned.height != 40 {
		t.Fatalf("expected pinned width kept and height seeded, got %dx%d", pinned.width, pinned.height)
	}
}
