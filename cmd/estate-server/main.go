// Command estate-server hosts the estate finder web page and its data file.
package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/atomicstack/estate-finder/internal/config"
	"github.com/atomicstack/estate-finder/internal/logging"
	"github.com/atomicstack/estate-finder/internal/server"
)

func main() {
	cfg := config.MustLoadServer()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg := server.Config{
		Root:  cfg.Root,
		Addr:  cfg.Addr(),
		Ready: func(net.Addr) { announce(os.Stdout, cfg) },
	}
	if err := server.ListenAndServe(ctx, srvCfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// announce reports a bound listener on w and in the log file.
func announce(w io.Writer, cfg config.ServerConfig) {
	fmt.Fprintf(w, "server listening on port %d\n", cfg.Port)
	logging.Infof("server listening on port %d (root %s)", cfg.Port, cfg.Root)
}
