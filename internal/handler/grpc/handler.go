package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
)

// Handler is the root gRPC transport handler.
//
// The vault API itself is HTTP-only; the gRPC surface exists for
// orchestrators and load balancers that probe liveness over the standard
// health protocol. A handler instance is created once at startup and
// shared by the gRPC server.
type Handler struct {
	// health implements grpc.health.v1.Health for the whole process.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service starts out
// SERVING, and returns the initialized instance.
//
// Parameters:
//   - logger: structured logger used for transport diagnostics.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// Register attaches the health service to the given gRPC server.
func (h *Handler) Register(server *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(server, h.health)
}

// SetNotServing flips the overall health status to NOT_SERVING and wakes
// all Watch streams. Called when shutdown begins so probes stop routing
// traffic to this instance before the listeners close.
func (h *Handler) SetNotServing() {
	h.logger.Info().Msg("health status set to NOT_SERVING")
	h.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
}
