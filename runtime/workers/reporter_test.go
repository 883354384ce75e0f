package workers

import (
	"bytes"
	"chat-poll/domain"
	"chat-poll/observability"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReporterWorker_Reports_On_Shutdown(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	monitoring := observability.NewMonitoring()
	monitoring.RecordPoll(domain.PollResult{MessageIDs: []domain.MessageID{1}, Degraded: true}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewReporterWorker(log, monitoring, time.Hour).Run(ctx)

	req.ErrorIs(err, context.Canceled)
	req.Contains(buf.String(), "Poll stats")
	req.Contains(buf.String(), "degraded=1")
}

func TestReporterWorker_Non_Positive_Interval_Uses_Default(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	worker := NewReporterWorker(log, observability.NewMonitoring(), 0)
	req.Equal(defaultReportInterval, worker.interval)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.NotPanics(func() { _ = worker.Run(ctx) })
}
