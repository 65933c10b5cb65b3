package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// restConfigRepository implements [store.VaultConfigRepository] over the
// remote row store.
type restConfigRepository struct {
	client *resty.Client
}

func (r *restConfigRepository) GetConfig(ctx context.Context, userID string) (models.VaultConfig, error) {
	var row models.VaultConfig

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&row).
		Get("/api/vault/config")
	if err != nil {
		return models.VaultConfig{}, fmt.Errorf("get config request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.VaultConfig{}, store.ErrConfigNotFound
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultConfig{}, err
	}

	return row, nil
}

func (r *restConfigRepository) SaveConfig(ctx context.Context, cfg *models.VaultConfig) error {
	var saved models.VaultConfig

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(cfg).
		SetResult(&saved).
		Post("/api/vault/config")
	if err != nil {
		return fmt.Errorf("save config request: %w", err)
	}
	// The salt of an initialized vault must never be replaced.
	if resp.StatusCode() == http.StatusConflict {
		return store.ErrConfigAlreadyExists
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	cfg.CreatedAt = saved.CreatedAt
	cfg.UpdatedAt = saved.UpdatedAt
	return nil
}
