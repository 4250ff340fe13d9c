// Package workers holds background jobs that run alongside the server.
package workers

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// RevocationPruner deletes revocation records whose tokens have expired.
type RevocationPruner interface {
	PruneRevocations(ctx context.Context, now time.Time) (int64, error)
}

// Pruner periodically clears expired records from the revocation list.
type Pruner struct {
	target   RevocationPruner
	interval time.Duration
	logger   logging.Logger
	pruned   prometheus.Counter
	now      func() time.Time
}

func NewPruner(target RevocationPruner, interval time.Duration, l logging.Logger, pruned prometheus.Counter) *Pruner {
	return &Pruner{
		target:   target,
		interval: interval,
		logger:   l.With("module", "pruner"),
		pruned:   pruned,
		now:      time.Now,
	}
}

// Run prunes once right away and then on every tick until ctx is done.
func (p *Pruner) Run(ctx context.Context) {
	p.logger.Info(ctx, "Revocation pruner started", "interval", p.interval.String())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info(ctx, "Revocation pruner stopped")
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *Pruner) runOnce(ctx context.Context) {
	n, err := p.target.PruneRevocations(ctx, p.now())
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error(ctx, "Revocation prune failed", "error", err.Error())
		}
		return
	}
	if n > 0 {
		p.logger.Info(ctx, "Pruned expired revocations", "count", n)
	}
	if p.pruned != nil {
		p.pruned.Add(float64(n))
	}
}
