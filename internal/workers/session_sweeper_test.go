package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

func TestSessionSweeper_RemovesExpiredRows(t *testing.T) {
	repo := store.NewMemorySessionRepository()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now().UTC()
	dead := models.VaultSession{UserID: "user-1", SessionID: "dead", ServerSecret: "s1", ExpiresAt: now.Add(-time.Minute)}
	live := models.VaultSession{UserID: "user-1", SessionID: "live", ServerSecret: "s2", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.SaveSession(ctx, &dead))
	require.NoError(t, repo.SaveSession(ctx, &live))

	sweeper := newSessionSweeper(ctx, repo, 20*time.Millisecond, logger.Nop())
	sweeper.Run()
	time.Sleep(70 * time.Millisecond)
	cancel()

	_, err := repo.GetSession(context.Background(), "user-1", "dead")
	assert.ErrorIs(t, err, store.ErrSessionNotFound, "the expired row must be gone")
	_, err = repo.GetSession(context.Background(), "user-1", "live")
	assert.NoError(t, err, "the live row must survive")
}

func TestSessionSweeper_StopsOnContextCancel(t *testing.T) {
	repo := store.NewMemorySessionRepository()
	ctx, cancel := context.WithCancel(context.Background())

	sweeper := newSessionSweeper(ctx, repo, 10*time.Millisecond, logger.Nop())
	sweeper.Run()
	cancel()
	time.Sleep(30 * time.Millisecond)

	// A row expiring after the cancel must never be swept.
	gone := models.VaultSession{UserID: "user-1", SessionID: "late", ServerSecret: "s", ExpiresAt: time.Now().UTC().Add(-time.Second)}
	require.NoError(t, repo.SaveSession(context.Background(), &gone))
	time.Sleep(40 * time.Millisecond)

	_, err := repo.GetSession(context.Background(), "user-1", "late")
	assert.NoError(t, err)
}

func TestNewSessionSweeper_DefaultInterval(t *testing.T) {
	s := newSessionSweeper(context.Background(), store.NewMemorySessionRepository(), 0, logger.Nop())
	assert.Equal(t, defaultSweepInterval, s.interval)
}
