package lookup

import (
	"fmt"
	"strings"

	"github.com/atomicstack/estate-finder/internal/dataset"
)

// MatchType records which derivation path produced a result.
type MatchType string

const (
	MatchSearch MatchType = "search"
	MatchFilter MatchType = "filter"
)

// Item is one row of the displayed result list.
type Item struct {
	EstateName string
	PianquName string
	MatchType  MatchType
}

// Display is the result panel state. Exactly one applies to any State.
type Display int

const (
	DisplayIdle Display = iota
	DisplaySearchTooShort
	DisplayNoResults
	DisplayResults
)

func (d Display) String() string {
	switch d {
	case DisplayIdle:
		return "idle"
	case DisplaySearchTooShort:
		return "search-too-short"
	case DisplayNoResults:
		return "no-results"
	case DisplayResults:
		return "results"
	default:
		return "unknown"
	}
}

// MinSearchLength is the trimmed rune count that switches on search mode.
const MinSearchLength = 1

// Derive computes the result list and display state for s over ds.
// Search takes precedence over the sub-district filter.
func Derive(s State, ds *dataset.Dataset) ([]Item, Display) {
	items := Results(s, ds)
	return items, displayFor(s, items)
}

// Results computes only the result list.
func Results(s State, ds *dataset.Dataset) []Item {
	records := ds.Records(s.District)
	if keyword := s.Mode.Keyword(); len([]rune(keyword)) >= MinSearchLength {
		return search(records, keyword)
	}
	if pianqu := s.Pianqu(); pianqu != "" {
		return filter(records, pianqu)
	}
	return []Item{}
}

func search(records []dataset.Record, keyword string) []Item {
	items := []Item{}
	for _, r := range records {
		for _, estate := range r.Estates {
			if strings.Contains(strings.ToLower(estate), keyword) {
				items = append(items, Item{EstateName: estate, PianquName: r.Name, MatchType: MatchSearch})
			}
		}
	}
	return items
}

func filter(records []dataset.Record, pianqu string) []Item {
	for _, r := range records {
		if r.Name != pianqu {
			continue
		}
		items := make([]Item, len(r.Estates))
		for i, estate := range r.Estates {
			items[i] = Item{EstateName: estate, PianquName: r.Name, MatchType: MatchFilter}
		}
		return items
	}
	// stale selection
	return []Item{}
}

func displayFor(s State, items []Item) Display {
	if len(items) > 0 {
		return DisplayResults
	}
	switch s.Mode.Kind() {
	case ModeSearching:
		if len([]rune(s.Mode.Keyword())) < MinSearchLength {
			return DisplaySearchTooShort
		}
		return DisplayNoResults
	case ModeFiltering:
		return DisplayNoResults
	default:
		return DisplayIdle
	}
}

// Heading is the title shown above a non-empty result list.
func Heading(items []Item) string {
	if len(items) == 0 {
		return ""
	}
	if items[0].MatchType == MatchSearch {
		return fmt.Sprintf("search results (%d)", len(items))
	}
	return fmt.Sprintf("%s all estates (%d)", items[0].PianquName, len(items))
}
