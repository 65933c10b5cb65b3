package http

import (
	"net/http"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/service"
	"github.com/raulshma/ever-life-vault-sub006/internal/utils"
)

// VaultProvider hands out the per-user vault services. Satisfied by
// [service.VaultRegistry].
type VaultProvider interface {
	Vault(userID string) *service.UserVault
}

type Handler struct {
	vaults VaultProvider
	cfg    config.App

	logger *logger.Logger
}

func NewHandler(vaults VaultProvider, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		vaults: vaults,
		cfg:    cfg,
		logger: logger,
	}
}

// vault resolves the authenticated user's vault from the request context.
// The auth middleware stores the user id there; a request that reaches a
// vault handler without one is a routing mistake and is rejected.
func (h *Handler) vault(r *http.Request) (*service.UserVault, bool) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		return nil, false
	}
	return h.vaults.Vault(userID), true
}
