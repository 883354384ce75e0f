package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// HTTPServerWorker serves the chat API until its context is cancelled.
// Each Run builds a fresh listener and server, so the supervisor can restart it.
type HTTPServerWorker struct {
	log             *slog.Logger
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration

	mu    sync.Mutex
	bound net.Addr
}

func NewHTTPServerWorker(log *slog.Logger, addr string, handler http.Handler, shutdownTimeout time.Duration) *HTTPServerWorker {
	return &HTTPServerWorker{log: log, addr: addr, handler: handler, shutdownTimeout: shutdownTimeout}
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", w.addr)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.bound = listener.Addr()
	w.mu.Unlock()

	server := &http.Server{
		Handler:           w.handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	w.log.Info("HTTP server listening", "addr", listener.Addr().String())

	served := make(chan error, 1)
	go func() { served <- server.Serve(listener) }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		w.log.Warn("HTTP server shutdown incomplete", "error", err)
	}
	if err := <-served; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	w.log.Info("HTTP server stopped")
	return ctx.Err()
}

// Addr is the address actually bound by the last Run, nil before the first one.
func (w *HTTPServerWorker) Addr() net.Addr {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bound
}
