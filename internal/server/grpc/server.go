// Package grpc is the TaskKeeper transport: the gRPC service from
// internal/proto, bearer-token authentication and a typed client.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	pb "github.com/dmitrijs2005/taskkeeper/internal/proto"
	"github.com/dmitrijs2005/taskkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"google.golang.org/grpc"
)

// SessionManager is the authentication core the transport relies on.
type SessionManager interface {
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.TokenPair, error)
	Validate(ctx context.Context, token string) (models.Identity, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, identity models.Identity) (*models.User, error)
}

// TaskManager is the per-user resource API behind the authenticated methods.
type TaskManager interface {
	Create(ctx context.Context, owner models.Identity, title, description string) (*models.Task, error)
	List(ctx context.Context, owner models.Identity) ([]*models.Task, error)
	Get(ctx context.Context, owner models.Identity, id string) (*models.Task, error)
	Update(ctx context.Context, owner models.Identity, id string, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, owner models.Identity, id string) error
}

type GRPCServer struct {
	pb.UnimplementedTaskKeeperServer
	address  string
	sessions SessionManager
	tasks    TaskManager
	logger   logging.Logger
	metrics  *metrics.Metrics
}

func NewGRPCServer(a string, l logging.Logger, sessions SessionManager, tasks TaskManager, m *metrics.Metrics) *GRPCServer {
	if m == nil {
		m = metrics.New()
	}
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		sessions: sessions,
		tasks:    tasks,
		metrics:  m,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(10 * time.Second):
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.authInterceptor))
	pb.RegisterTaskKeeperServer(srv, s)
	return srv
}
