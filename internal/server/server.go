// Package server hosts the estate finder web page: index.html at the root and
// every other path from the same directory.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicstack/estate-finder/internal/logging"
	"github.com/atomicstack/estate-finder/internal/logging/events"
)

const shutdownTimeout = 5 * time.Second

// Config describes where the host listens and what it serves. Ready, when
// set, is called once the listener is bound.
type Config struct {
	Root  string
	Addr  string
	Ready func(addr net.Addr)
}

// Handler returns the routes for root: GET / serves index.html and every
// other GET falls through to a file server. Hidden paths and directories
// without an index are not found; other methods are not allowed.
func Handler(root string) http.Handler {
	index := filepath.Join(root, "index.html")
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, index)
	})
	mux.Handle("GET /", staticFiles(root))
	return accessMiddleware(mux)
}

func staticFiles(root string) http.Handler {
	files := http.FileServer(http.Dir(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hiddenPath(r.URL.Path) || bareDirectory(root, r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// hiddenPath reports whether any segment of urlPath starts with a dot.
func hiddenPath(urlPath string) bool {
	for _, segment := range strings.Split(urlPath, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

// bareDirectory reports whether urlPath names a directory under root that
// has no index.html to serve in place of a listing.
func bareDirectory(root, urlPath string) bool {
	name := filepath.Join(root, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(name, "index.html"))
	return err != nil
}

// statusWriter captures the status code and body size written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func accessMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		events.Server.Request(r.Method, r.URL.Path, sw.status, sw.bytes, time.Since(start))
	})
}

// ListenAndServe listens on cfg.Addr and serves until ctx is cancelled.
func ListenAndServe(ctx context.Context, cfg Config) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	if cfg.Ready != nil {
		cfg.Ready(ln.Addr())
	}
	return Serve(ctx, ln, cfg.Root)
}

// Serve serves root on ln until ctx is cancelled, then shuts down gracefully.
// The listener is closed on return.
func Serve(ctx context.Context, ln net.Listener, root string) error {
	srv := &http.Server{
		Handler:           Handler(root),
		ReadHeaderTimeout: 10 * time.Second,
	}
	events.Server.Listen(ln.Addr().String(), root)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	events.Server.Shutdown(context.Cause(ctx).Error())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error(fmt.Errorf("shutdown: %w", err))
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
