package observability

import (
	"chat-poll/contract"
	"chat-poll/domain"
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// Stats is a point in time view of the poll traffic and the process.
type Stats struct {
	Uptime         string `json:"uptime"`
	PollsServed    uint64 `json:"polls_served"`
	PollsDegraded  uint64 `json:"polls_degraded"`
	PollsFailed    uint64 `json:"polls_failed"`
	IDsReported    uint64 `json:"ids_reported"`
	AllocMemMb     uint64 `json:"alloc_mem_mb"`
	NumGC          uint32 `json:"num_gc"`
	NumGoroutine   int    `json:"num_goroutine"`
	LastDegradedAt string `json:"last_degraded_at,omitempty"`
}

// Monitoring counts polls. Safe for concurrent use.
type Monitoring struct {
	startedAt      time.Time
	pollsServed    atomic.Uint64
	pollsDegraded  atomic.Uint64
	pollsFailed    atomic.Uint64
	idsReported    atomic.Uint64
	lastDegradedAt atomic.Int64
}

func NewMonitoring() *Monitoring {
	return &Monitoring{startedAt: time.Now()}
}

func (m *Monitoring) RecordPoll(result domain.PollResult, err error) {
	if err != nil {
		m.pollsFailed.Add(1)
		return
	}
	m.pollsServed.Add(1)
	m.idsReported.Add(uint64(len(result.MessageIDs)))
	if result.Degraded {
		m.pollsDegraded.Add(1)
		m.lastDegradedAt.Store(time.Now().UnixNano())
	}
}

func (m *Monitoring) GetLatest() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats := Stats{
		Uptime:        time.Since(m.startedAt).Round(time.Second).String(),
		PollsServed:   m.pollsServed.Load(),
		PollsDegraded: m.pollsDegraded.Load(),
		PollsFailed:   m.pollsFailed.Load(),
		IDsReported:   m.idsReported.Load(),
		AllocMemMb:    mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
		NumGoroutine:  runtime.NumGoroutine(),
	}
	if at := m.lastDegradedAt.Load(); at != 0 {
		stats.LastDegradedAt = time.Unix(0, at).UTC().Format(time.RFC3339)
	}
	return stats
}

// MonitoredPoller records every poll going through the wrapped poller.
type MonitoredPoller struct {
	next       contract.INotificationPoller
	monitoring *Monitoring
}

func NewMonitoredPoller(next contract.INotificationPoller, monitoring *Monitoring) MonitoredPoller {
	return MonitoredPoller{next: next, monitoring: monitoring}
}

func (p MonitoredPoller) Poll(ctx context.Context, username string) (domain.PollResult, error) {
	result, err := p.next.Poll(ctx, username)
	p.monitoring.RecordPoll(result, err)
	return result, err
}
