package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/agenda/internal/api"
	"github.com/dmitrijs2005/agenda/internal/logging"
	"github.com/dmitrijs2005/agenda/internal/server/models"
	"github.com/dmitrijs2005/agenda/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Login(ctx context.Context, username, digest string) (*services.LoginResult, error)
}

type contactSvc interface {
	List(ctx context.Context, ascending bool) ([]*models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
	Create(ctx context.Context, c *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) (string, string, error)
}

type GRPCServer struct {
	api.UnimplementedAgendaServer
	address   string
	users     userSvc
	contacts  contactSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, cs contactSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		contacts:  cs,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterAgendaServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
