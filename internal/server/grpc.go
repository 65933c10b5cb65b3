package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	myGRPC "github.com/raulshma/ever-life-vault-sub006/internal/handler/grpc"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")

	// report NOT_SERVING while in-flight RPCs drain
	g.handler.SetNotServing()
	g.server.GracefulStop()
}
