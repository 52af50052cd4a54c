package ingest

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/grupoherz/conversation-dashboard/internal/dashboard"
	"github.com/grupoherz/conversation-dashboard/internal/store"
	"github.com/grupoherz/conversation-dashboard/pkg/logger"
	"github.com/grupoherz/conversation-dashboard/pkg/metrics"
)

// Poller re-fetches the webhook on a fixed interval and replaces the
// snapshot with the aggregated result. Fetches may overlap when the
// upstream is slow; each fetch carries a sequence number and only the
// latest issued one may apply, so a stale response can never overwrite a
// newer snapshot.
type Poller struct {
	client   *Client
	store    *store.Store
	company  string
	interval time.Duration
	logger   *logger.Logger

	seq atomic.Uint64
	wg  sync.WaitGroup
}

// NewPoller creates a poller. The company tags every aggregated
// conversation, matching the single-tenant webhook source.
func NewPoller(client *Client, st *store.Store, company string, interval time.Duration, log *logger.Logger) *Poller {
	return &Poller{
		client:   client,
		store:    st,
		company:  company,
		interval: interval,
		logger:   log,
	}
}

// Run polls until ctx is cancelled, fetching once immediately. It blocks;
// callers start it in a goroutine and cancel the context on shutdown.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("poller started", zap.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.spawn(ctx)
	for {
		select {
		case <-ctx.Done():
			p.wg.Wait()
			p.logger.Info("poller stopped")
			return
		case <-ticker.C:
			p.spawn(ctx)
		}
	}
}

// spawn runs one cycle without blocking the tick loop, so a hung fetch
// delays nothing but its own result.
func (p *Poller) spawn(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.pollOnce(ctx)
	}()
}

func (p *Poller) pollOnce(ctx context.Context) {
	p.pollWithSeq(ctx, p.seq.Add(1))
}

func (p *Poller) pollWithSeq(ctx context.Context, seq uint64) {
	start := time.Now()

	records, err := p.client.Fetch(ctx)
	status := "ok"
	if err != nil {
		// Fail-soft: a broken upstream renders as an empty dashboard,
		// never as an error surfaced to viewers.
		status = "error"
		records = nil
		metrics.IngestFailures.Inc()
		p.logger.Warn("ingestion failed, applying empty snapshot",
			zap.Uint64("seq", seq), zap.Error(err))
	}
	metrics.RecordIngest(status, time.Since(start).Seconds())

	if seq != p.seq.Load() {
		metrics.StaleResponsesDiscarded.Inc()
		p.logger.Debug("discarding stale webhook response", zap.Uint64("seq", seq))
		return
	}

	conversations := dashboard.Aggregate(records, p.company)
	applied := p.store.Replace(store.Snapshot{
		Seq:           seq,
		FetchedAt:     time.Now(),
		Records:       records,
		Conversations: conversations,
		ByClient:      dashboard.IndexByClient(conversations),
	})
	if !applied {
		metrics.StaleResponsesDiscarded.Inc()
		return
	}

	metrics.RecordSnapshot(len(records), len(conversations))
	p.logger.Debug("snapshot replaced",
		zap.Uint64("seq", seq),
		zap.Int("records", len(records)),
		zap.Int("conversations", len(conversations)))
}
