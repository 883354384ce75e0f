package workers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestHTTPServerWorker_Serves_Until_Cancelled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	worker := NewHTTPServerWorker(log, "127.0.0.1:0", handler, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Given the worker is listening
	req.Eventually(func() bool { return worker.Addr() != nil }, time.Second, 5*time.Millisecond)

	// When calling it
	resp, err := http.Get("http://" + worker.Addr().String())
	req.NoError(err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	req.NoError(err)
	req.Equal("pong", string(body))

	// Then cancelling stops it with the context error
	cancel()
	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(2 * time.Second):
		req.Fail("HTTP worker should stop on cancel")
	}
}

func TestHTTPServerWorker_Listen_Failure(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	worker := NewHTTPServerWorker(log, "256.0.0.1:-1", http.NotFoundHandler(), time.Second)

	req.Error(worker.Run(context.Background()))
	req.Nil(worker.Addr())
}
