package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
)

const defaultSessionCheckInterval = 30 * time.Second

type sessionJob struct {
	session   SessionManager
	onExpired func()
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionJob creates a sessionJob that calls session.CheckSessionValidity
// on a ticker. onExpired runs once per expiry, after the manager has already
// locked the vault; it may be nil. The job is idle until Start is called.
func NewSessionJob(session SessionManager, onExpired func(), logger *logger.Logger) SessionJob {
	return &sessionJob{session: session, onExpired: onExpired, logger: logger}
}

// Start implements SessionJob. It stops any previously running job, then
// launches a background goroutine that re-checks session validity every
// interval. If interval is zero or negative it defaults to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *sessionJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

// Stop implements SessionJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *sessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *sessionJob) check(ctx context.Context) {
	err := j.session.CheckSessionValidity(ctx)
	if err == nil {
		return
	}

	if errors.Is(err, ErrSessionExpired) {
		j.logger.Info().
			Str("func", "sessionJob.check").
			Msg("session expired, vault locked")
		if j.onExpired != nil {
			j.onExpired()
		}
		return
	}

	j.logger.Warn().Err(err).
		Str("func", "sessionJob.check").
		Msg("session validity check failed")
}
