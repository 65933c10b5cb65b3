package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// restSessionRepository implements [store.VaultSessionRepository] over
// the remote row store.
type restSessionRepository struct {
	client *resty.Client
}

func (r *restSessionRepository) GetSession(ctx context.Context, userID, sessionID string) (models.VaultSession, error) {
	var row models.VaultSession

	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("sessionID", sessionID).
		SetQueryParam("user_id", userID).
		SetResult(&row).
		Get("/api/vault/sessions/{sessionID}")
	if err != nil {
		return models.VaultSession{}, fmt.Errorf("get session request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.VaultSession{}, store.ErrSessionNotFound
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultSession{}, err
	}

	return row, nil
}

func (r *restSessionRepository) SaveSession(ctx context.Context, session *models.VaultSession) error {
	var saved models.VaultSession

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(session).
		SetResult(&saved).
		Post("/api/vault/sessions")
	if err != nil {
		return fmt.Errorf("save session request: %w", err)
	}
	if resp.StatusCode() == http.StatusConflict {
		return store.ErrDuplicateRecord
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	session.CreatedAt = saved.CreatedAt
	return nil
}

func (r *restSessionRepository) DeleteSession(ctx context.Context, userID, sessionID string) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("sessionID", sessionID).
		SetQueryParam("user_id", userID).
		Delete("/api/vault/sessions/{sessionID}")
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}
	// Deleting an absent row is not an error; locking stays idempotent.
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp)
}

func (r *restSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	var result struct {
		Deleted int64 `json:"deleted"`
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("before", now.UTC().Format(time.RFC3339)).
		SetResult(&result).
		Delete("/api/vault/sessions/expired")
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.Deleted, nil
}
