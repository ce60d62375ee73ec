package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/estate-finder/internal/config"
	"github.com/atomicstack/estate-finder/internal/logging"
)

func TestAnnounceWritesListeningLine(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "server.log"))
	t.Cleanup(func() { logging.Configure("") })

	var out strings.Builder
	announce(&out, config.ServerConfig{Port: 4321, Root: "."})
	if got := out.String(); got != "server listening on port 4321\n" {
		t.Fatalf("unexpected announcement %q", got)
	}
}
