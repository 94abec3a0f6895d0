package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	grpc "google.golang.org/grpc"
)

// Server can start grpc server handling leaderboard requests.
type Server struct {
	service LeaderboardServer
	address string
	l       logrus.FieldLogger
}

// NewServer creates new Server instance.
func NewServer(service LeaderboardServer, address string, l logrus.FieldLogger) *Server {
	return &Server{
		service: service,
		address: address,
		l:       l,
	}
}

// Run runs the grpc server until ctx is done.
// Returns error when failing to open tcp connection.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("starting tcp listener: %w", err)
	}

	s.Serve(ctx, lis)
	return nil
}

// Serve handles requests on given listener until ctx is done.
func (s *Server) Serve(ctx context.Context, lis net.Listener) {
	srv := grpc.NewServer()
	RegisterLeaderboardServer(srv, s.service)

	go func() {
		s.l.Infof("starting grpc server, listening on %s", lis.Addr())
		if err := srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			s.l.Errorf("grpc server returned error: %v", err)
		}
	}()

	<-ctx.Done()
	srv.GracefulStop()
	s.l.Info("grpc server shut down")
}
