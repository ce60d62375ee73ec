package events

import (
	"time"

	"github.com/atomicstack/estate-finder/internal/logging"
)

type ServerTracer struct{}

var Server = ServerTracer{}

func (ServerTracer) Listen(addr, root string) {
	logging.Trace("server.listen", map[string]interface{}{"addr": addr, "root": root})
}

func (ServerTracer) Request(method, path string, status, bytes int, duration time.Duration) {
	logging.Trace("server.request", map[string]interface{}{
		"method":      method,
		"path":        path,
		"status":      status,
		"bytes":       bytes,
		"duration_ms": duration.Milliseconds(),
	})
}

func (ServerTracer) Shutdown(reason string) {
	logging.Trace("server.shutdown", map[string]interface{}{"reason": reason})
}
