package events

import "github.com/atomicstack/estate-finder/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

type LookupTracer struct{}

var (
	UI     = UITracer{}
	Search = SearchTracer{}
	Lookup = LookupTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) ResultCursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": reason})
}

func (SearchTracer) Cleared(district string) {
	logging.Trace("search.clear", map[string]interface{}{"district": district})
}

func (SearchTracer) WordBackspace(district, query string) {
	logging.Trace("search.word-backspace", map[string]interface{}{"district": district, "query": query})
}

func (SearchTracer) Cursor(pos int) {
	logging.Trace("search.cursor", map[string]interface{}{"cursor": pos})
}

func (SearchTracer) CursorWord(pos int) {
	logging.Trace("search.cursor-word", map[string]interface{}{"cursor": pos})
}

func (SearchTracer) Append(district, query string) {
	logging.Trace("search.append", map[string]interface{}{"district": district, "query": query})
}

func (SearchTracer) Backspace(district, query string) {
	logging.Trace("search.backspace", map[string]interface{}{"district": district, "query": query})
}

func (SearchTracer) Focus(focused bool) {
	logging.Trace("search.focus", map[string]interface{}{"focused": focused})
}

func (LookupTracer) District(district string) {
	logging.Trace("lookup.district", map[string]interface{}{"district": district})
}

func (LookupTracer) Pianqu(district, pianqu string) {
	logging.Trace("lookup.pianqu", map[string]interface{}{"district": district, "pianqu": pianqu})
}

func (LookupTracer) Results(display string, count int) {
	logging.Trace("lookup.results", map[string]interface{}{"display": display, "count": count})
}
