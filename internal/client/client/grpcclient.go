package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.RatingServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// unaryInterceptor attaches the current access token, if any, and the
// per-request deadline.
func (s *GRPCClient) unaryInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewRatingClient connects to endpointURL. Extra dial options are appended
// after the defaults (insecure transport and the token interceptor).
func NewRatingClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.unaryInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewRatingServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Signup registers a user and keeps the returned access token.
func (s *GRPCClient) Signup(ctx context.Context, in models.UserInput) (*models.User, error) {
	resp, err := s.client.Signup(ctx, &api.SignupRequest{
		Name:     in.Name,
		Email:    in.Email,
		Address:  in.Address,
		Password: in.Password,
	})
	if err != nil {
		return nil, mapError(err)
	}
	s.setToken(resp.AccessToken)
	return &resp.User, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	s.setToken(resp.AccessToken)
	return &resp.User, nil
}

// Logout forgets the access token. Tokens are stateless, so the server is
// not involved.
func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) Me(ctx context.Context) (*models.User, error) {
	resp, err := s.client.Me(ctx, &api.MeRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.User, nil
}

func (s *GRPCClient) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	resp, err := s.client.ListUsers(ctx, &api.ListUsersRequest{
		Role:   string(filter.Role),
		Fields: fieldNames(filter.Fields),
		Query:  filter.Query,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	resp, err := s.client.CreateUser(ctx, &api.CreateUserRequest{
		Name:     in.Name,
		Email:    in.Email,
		Address:  in.Address,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.User, nil
}

func (s *GRPCClient) CreateStore(ctx context.Context, in models.StoreInput) (*models.Store, error) {
	resp, err := s.client.CreateStore(ctx, &api.CreateStoreRequest{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		OwnerID: in.OwnerID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Store, nil
}

func (s *GRPCClient) PlatformStats(ctx context.Context) (*api.PlatformStatsResponse, error) {
	resp, err := s.client.PlatformStats(ctx, &api.PlatformStatsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListStores(ctx context.Context, filter models.StoreFilter) ([]api.StoreCard, error) {
	resp, err := s.client.ListStores(ctx, &api.ListStoresRequest{
		Fields: fieldNames(filter.Fields),
		Query:  filter.Query,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Stores, nil
}

func (s *GRPCClient) SubmitRating(ctx context.Context, storeID string, value int) (*models.Rating, bool, error) {
	resp, err := s.client.SubmitRating(ctx, &api.SubmitRatingRequest{StoreID: storeID, Rating: value})
	if err != nil {
		return nil, false, mapError(err)
	}
	return &resp.Rating, resp.Created, nil
}

func (s *GRPCClient) StoreRatings(ctx context.Context, storeID string) (*api.StoreOverview, error) {
	resp, err := s.client.StoreRatings(ctx, &api.StoreRatingsRequest{StoreID: storeID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) MyStore(ctx context.Context) (*api.StoreOverview, error) {
	resp, err := s.client.MyStore(ctx, &api.MyStoreRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func fieldNames(fields []models.SearchField) []string {
	res := make([]string, 0, len(fields))
	for _, f := range fields {
		res = append(res, string(f))
	}
	return res
}

// mapError turns a gRPC status back into the sentinel errors the server
// started from, and field violations back into validation.Errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		if errs := fieldErrors(st); len(errs) > 0 {
			return errs
		}
		return fmt.Errorf("invalid request: %s", st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.Unauthenticated:
		switch st.Message() {
		case common.ErrInvalidCredentials.Error():
			return common.ErrInvalidCredentials
		case common.ErrTokenExpired.Error():
			return common.ErrTokenExpired
		}
		return common.ErrorUnauthorized
	case codes.PermissionDenied:
		return common.ErrorForbidden
	case codes.ResourceExhausted:
		return ErrRateLimited
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	}
	return fmt.Errorf("rpc error: %w", err)
}

func fieldErrors(st *status.Status) validation.Errors {
	var errs validation.Errors
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, v := range br.GetFieldViolations() {
			errs = append(errs, &validation.FieldError{
				Field: v.GetField(),
				Kind:  validation.Kind(v.GetDescription()),
			})
		}
	}
	return errs
}
