package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/logging"
	"github.com/dmitrijs2005/planwise/internal/server/observability"
	"github.com/dmitrijs2005/planwise/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	api.UnimplementedPlanWiseServer
	address     string
	credentials *services.CredentialService
	admins      *services.AdminService
	roster      *services.RosterService
	logger      logging.Logger
	jwtSecret   []byte
	metrics     *observability.Metrics
}

// NewGRPCServer wires the services behind the PlanWise gRPC API.
// metrics may be nil.
func NewGRPCServer(a string, l logging.Logger, cs *services.CredentialService, as *services.AdminService,
	rs *services.RosterService, secretKey string, m *observability.Metrics) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		credentials: cs,
		admins:      as,
		roster:      rs,
		jwtSecret:   []byte(secretKey),
		metrics:     m,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	var chain []grpc.UnaryServerInterceptor
	if s.metrics != nil {
		chain = append(chain, s.metrics.UnaryServerInterceptor)
	}
	chain = append(chain, s.accessTokenInterceptor)

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))
	api.RegisterPlanWiseServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
