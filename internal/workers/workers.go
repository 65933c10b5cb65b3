package workers

import (
	"context"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
)

// Workers runs a set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers assembles the daemon's background workers, currently the
// expired-session sweeper. All of them stop when ctx is cancelled.
func NewWorkers(ctx context.Context, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionSweeper(ctx, storages.Sessions, cfg.SessionSweepInterval, logger),
		},
	}
}

// Run starts every worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
