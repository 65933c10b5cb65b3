package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
)

func TestNewHandler_StartsServing(t *testing.T) {
	h := NewHandler(logger.Nop())
	require.NotNil(t, h)

	resp, err := h.health.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})

	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestSetNotServing_FlipsOverallStatus(t *testing.T) {
	h := NewHandler(logger.Nop())

	h.SetNotServing()

	resp, err := h.health.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestRegister_AttachesHealthService(t *testing.T) {
	h := NewHandler(logger.Nop())
	server := grpc.NewServer()

	h.Register(server)

	_, registered := server.GetServiceInfo()["grpc.health.v1.Health"]
	assert.True(t, registered, "health service should be registered on the server")
}
