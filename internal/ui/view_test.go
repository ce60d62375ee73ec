package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/estate-finder/internal/dataset"
	"github.com/atomicstack/estate-finder/internal/lookup"
)

func TestViewShowsIdleMessage(t *testing.T) {
	h := newTestHarness("A")
	view := h.View()
	for _, want := range []string{defaultTitle, "A", "B", "2 sub-districts", searchPlaceholder, pianquPlaceholder, idleMessage} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewShowsTooShortForWhitespace(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("  ")
	if view := h.View(); !strings.Contains(view, tooShortMessage) {
		t.Fatalf("expected too-short message, got:\n%s", view)
	}
}

func TestViewShowsNoResults(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("zzz")
	view := h.View()
	if !strings.Contains(view, noResultsMessage) || !strings.Contains(view, noResultsHint) {
		t.Fatalf("expected no-results message and hint, got:\n%s", view)
	}
}

func TestViewShowsSearchResults(t *testing.T) {
	h := newTestHarness("A")
	h.Key("/")
	h.Type("lake")
	view := h.View()
	for _, want := range []string{"search results (2)", "Lakeview", "Lakeside", "P1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Hilltop") {
		t.Fatalf("did not expect non-matching estate, got:\n%s", view)
	}
}

func TestViewShowsPianquListing(t *testing.T) {
	h := newTestHarness("A")
	h.Key("]")
	h.Key("]")
	view := h.View()
	if !strings.Contains(view, "P2 all estates (1)") || !strings.Contains(view, "Hilltop") {
		t.Fatalf("expected P2 listing, got:\n%s", view)
	}
}

func TestViewWithoutDistricts(t *testing.T) {
	m := NewModel(lookup.New(dataset.Empty(), ""), 80, 24, false)
	view := m.View()
	if !strings.Contains(view, noDistrictsMessage) {
		t.Fatalf("expected no-districts message, got:\n%s", view)
	}
	if !strings.Contains(view, idleMessage) {
		t.Fatalf("expected idle message, got:\n%s", view)
	}
}

func TestViewFooterFollowsFocus(t *testing.T) {
	m := NewModel(lookup.New(sampleDataset(), "A"), 100, 24, true)
	if view := m.View(); !strings.Contains(view, footerHintsBrowse) {
		t.Fatalf("expected browse hints, got:\n%s", view)
	}
	m.focusSearch()
	if view := m.View(); !strings.Contains(view, footerHintsSearch) {
		t.Fatalf("expected search hints, got:\n%s", view)
	}
}

func TestTruncateTextCountsWideRunes(t *testing.T) {
	if got := truncateText("华润城", 4); got != "华…" {
		t.Fatalf("expected 华…, got %q", got)
	}
	if got := truncateText("abc", 5); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("expected trailing ellipsis, got %#v", got)
	}
}

func TestViewShowsSubtitleWithDistrictCount(t *testing.T) {
	m := NewModel(lookup.New(sampleDataset(), "A"), 80, 24, false)
	if strings.Contains(m.View(), "data updated") {
		t.Fatalf("expected no subtitle line by default")
	}
	m.SetSubtitle("data updated: 2023-11-01")
	view := m.View()
	if !strings.Contains(view, "data updated: 2023-11-01") || !strings.Contains(view, "2 districts") {
		t.Fatalf("expected subtitle with district count, got:\n%s", view)
	}
	if got := m.chromeRowCount(); got != 6 {
		t.Fatalf("expected subtitle to add a chrome row, got %d", got)
	}
}
