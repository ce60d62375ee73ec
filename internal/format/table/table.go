package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each
// column. Widths are terminal cells, so CJK names line up.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatWithWidths(rows, alignments, ColumnWidths(rows))
}

// ColumnWidths returns the widest cell of each column. Rows shorter than the
// widest row contribute nothing to the missing columns.
func ColumnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	return widths
}

// FormatWithWidths pads rows to precomputed column widths, letting a
// scrolled window of rows keep the alignment of the full list.
func FormatWithWidths(rows [][]string, alignments []Alignment, widths []int) []string {
	if len(rows) == 0 {
		return nil
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			width := 0
			if c < len(widths) {
				width = widths[c] - cellWidth(cell)
			}
			if width < 0 {
				width = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, width)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, width)
			}
		}
		out[i] = b.String()
	}
	return out
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
