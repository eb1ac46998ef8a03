// Package grpc serves the diagramkeeper API over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
)

type GRPCServer struct {
	address string
	api     *api.Service
	metrics *metrics.Metrics
	logger  logging.Logger
}

var _ DiagramKeeperServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, svc *api.Service, m *metrics.Metrics) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		api:     svc,
		metrics: m,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.loggingInterceptor))

	RegisterDiagramKeeperServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
