// Package grpc serves the rating API: request handlers, the auth, role and
// rate-limit interceptors and the mapping of domain errors to status codes.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/logging"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/server/metrics"
	"github.com/dmitrijs2005/storerating/internal/server/services"
)

type userService interface {
	Signup(ctx context.Context, in models.UserInput) (*models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	IssueToken(u *models.User) (string, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
}

type storeService interface {
	CreateStore(ctx context.Context, in models.StoreInput) (*models.Store, error)
	GetStore(ctx context.Context, id string) (*models.Store, error)
}

type ratingService interface {
	UpsertRating(ctx context.Context, storeID, userID string, value int) (*models.Rating, bool, error)
}

type dashboardService interface {
	PlatformStats(ctx context.Context) (*services.PlatformStats, error)
	StoreCards(ctx context.Context, filter models.StoreFilter, viewerID string) ([]services.StoreCard, error)
	StoreOverview(ctx context.Context, storeID string) (*services.StoreOverview, error)
	OwnerOverview(ctx context.Context, ownerID string) (*services.StoreOverview, error)
}

// Options tunes the server beyond its services.
type Options struct {
	SecretKey          string
	LoginRatePerSecond float64
	LoginBurst         int
	Metrics            *metrics.Metrics
}

type GRPCServer struct {
	api.UnimplementedRatingServiceServer
	address   string
	users     userService
	stores    storeService
	ratings   ratingService
	dashboard dashboardService
	logger    logging.Logger
	jwtSecret []byte
	limiter   *peerLimiter
	metrics   *metrics.Metrics
}

func NewGRPCServer(a string, l logging.Logger, us userService, ss storeService, rs ratingService, ds dashboardService, opts Options) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		stores:    ss,
		ratings:   rs,
		dashboard: ds,
		jwtSecret: []byte(opts.SecretKey),
		limiter:   newPeerLimiter(opts.LoginRatePerSecond, opts.LoginBurst),
		metrics:   opts.Metrics,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and the rating
// service registered on it.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.rateLimitInterceptor,
		s.accessTokenInterceptor,
	))
	api.RegisterRatingServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
