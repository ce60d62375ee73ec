// Package lookup implements the selection/search controller behind the estate
// finder. State is a district plus an input Mode; Derive turns state and a
// dataset into the displayed result list without touching any rendering layer.
package lookup

import (
	"strings"
	"unicode"
)

// ModeKind tags the active input mode.
type ModeKind int

const (
	ModeIdle ModeKind = iota
	ModeSearching
	ModeFiltering
)

func (k ModeKind) String() string {
	switch k {
	case ModeIdle:
		return "idle"
	case ModeSearching:
		return "searching"
	case ModeFiltering:
		return "filtering"
	default:
		return "unknown"
	}
}

// Mode is the search-or-filter input state. Only one of search text and
// sub-district selection can be held at a time.
type Mode struct {
	kind  ModeKind
	value string
}

// Idle is the mode with neither search text nor a sub-district.
func Idle() Mode {
	return Mode{}
}

// Searching holds raw search text. Empty text collapses to Idle; whitespace
// is kept so the too-short state stays representable.
func Searching(text string) Mode {
	if text == "" {
		return Idle()
	}
	return Mode{kind: ModeSearching, value: text}
}

// Filtering holds a selected sub-district. An empty name collapses to Idle.
func Filtering(pianqu string) Mode {
	if pianqu == "" {
		return Idle()
	}
	return Mode{kind: ModeFiltering, value: pianqu}
}

// Kind returns the mode tag.
func (m Mode) Kind() ModeKind {
	return m.kind
}

// SearchText returns the raw search text, or "" outside search mode.
func (m Mode) SearchText() string {
	if m.kind != ModeSearching {
		return ""
	}
	return m.value
}

// Keyword returns the trimmed, lower-cased search text. A byte order mark
// counts as whitespace when trimming.
func (m Mode) Keyword() string {
	return strings.ToLower(strings.TrimFunc(m.SearchText(), isTrimmable))
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Pianqu returns the selected sub-district, or "" outside filter mode.
func (m Mode) Pianqu() string {
	if m.kind != ModeFiltering {
		return ""
	}
	return m.value
}
