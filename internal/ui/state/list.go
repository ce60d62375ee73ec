// Package state holds the editable pieces of the terminal view: the search
// query buffer and the scrollable result list.
package state

import (
	"slices"

	"github.com/atomicstack/estate-finder/internal/lookup"
)

// List is the result list with cursor and viewport tracking.
type List struct {
	Items          []lookup.Item
	Cursor         int
	ViewportOffset int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Update swaps in a new result set. The cursor and viewport return to the top
// unless the items are unchanged.
func (l *List) Update(items []lookup.Item) {
	if slices.Equal(l.Items, items) {
		return
	}
	l.Items = CloneItems(items)
	l.Cursor = 0
	l.ViewportOffset = 0
}

// Current returns the item under the cursor.
func (l *List) Current() (lookup.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return lookup.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// MoveCursorUp moves the cursor one row up.
func (l *List) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor one row down.
func (l *List) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(len(l.Items)-maxVisible, 0)
	l.ViewportOffset = min(max(l.ViewportOffset, 0), maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = min(max(l.Cursor-maxVisible+1, 0), maxOffset)
	}
}

// Visible returns the window of items starting at the viewport offset.
func (l *List) Visible(maxVisible int) []lookup.Item {
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items
	}
	start := min(max(l.ViewportOffset, 0), len(l.Items)-maxVisible)
	return l.Items[start : start+maxVisible]
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []lookup.Item) []lookup.Item {
	dup := make([]lookup.Item, len(items))
	copy(dup, items)
	return dup
}
