package events

import "github.com/atomicstack/estate-finder/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) DatasetLoaded(path string, districts int) {
	logging.Trace("app.dataset", map[string]interface{}{"path": path, "districts": districts})
}

func (AppTracer) DatasetMissing(path string) {
	logging.Trace("app.dataset-missing", map[string]interface{}{"path": path})
}
