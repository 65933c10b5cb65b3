package handler

import (
	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/handler/grpc"
	"github.com/raulshma/ever-life-vault-sub006/internal/handler/http"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(vaults http.VaultProvider, appCfg config.App, srvCfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if srvCfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(vaults, appCfg, logger)
	}
	if srvCfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
