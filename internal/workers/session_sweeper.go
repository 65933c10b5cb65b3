package workers

import (
	"context"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
)

const defaultSweepInterval = time.Minute

// sessionSweeper periodically deletes expired vault session rows.
// Clients cannot restore from an expired row anyway; sweeping keeps the
// dead server secrets from piling up in storage.
type sessionSweeper struct {
	ctx      context.Context
	sessions store.VaultSessionRepository
	interval time.Duration
	logger   *logger.Logger
}

func newSessionSweeper(ctx context.Context, sessions store.VaultSessionRepository, interval time.Duration, logger *logger.Logger) *sessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &sessionSweeper{ctx: ctx, sessions: sessions, interval: interval, logger: logger}
}

// Run implements [Worker].
func (s *sessionSweeper) Run() {
	go s.loop()
}

func (s *sessionSweeper) loop() {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-t.C:
			s.sweep()
		}
	}
}

func (s *sessionSweeper) sweep() {
	swept, err := s.sessions.DeleteExpiredSessions(s.ctx, time.Now().UTC())
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "sessionSweeper.sweep").
			Msg("error occured during sweeping expired sessions")
		return
	}

	if swept > 0 {
		s.logger.Info().
			Str("func", "sessionSweeper.sweep").
			Int64("sessions", swept).
			Msg("expired vault sessions swept")
	}
}
