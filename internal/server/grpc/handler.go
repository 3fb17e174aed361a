package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/server/auth"
	"github.com/dmitrijs2005/storerating/internal/server/services"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Signup(ctx context.Context, req *api.SignupRequest) (*api.AuthResponse, error) {
	s.logger.Info(ctx, "Signup request", "email", req.Email)

	u, err := s.users.Signup(ctx, models.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		s.logger.Info(ctx, "Signup rejected", "email", req.Email, "error", err)
		return nil, toStatus(err)
	}

	token, err := s.users.IssueToken(u)
	if err != nil {
		s.logger.Error(ctx, "error issuing token", "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &api.AuthResponse{AccessToken: token, User: *u}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.AuthResponse, error) {
	u, token, err := s.users.Login(ctx, req.Email, req.Password)
	s.metrics.Login(err == nil)
	if err != nil {
		if !errors.Is(err, common.ErrInvalidCredentials) {
			s.logger.Error(ctx, "login failed", "error", err)
		}
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Logged in", "user_id", u.ID, "role", u.Role)
	return &api.AuthResponse{AccessToken: token, User: *u}, nil
}

func (s *GRPCServer) Me(ctx context.Context, req *api.MeRequest) (*api.UserResponse, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetUser(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, "unknown user")
		}
		return nil, toStatus(err)
	}
	return &api.UserResponse{User: *u}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *api.ListUsersRequest) (*api.ListUsersResponse, error) {
	filter := models.UserFilter{
		Fields: api.SearchFields(req.Fields),
		Query:  req.Query,
	}
	if req.Role != "" {
		role, err := models.ParseRole(req.Role)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		filter.Role = role
	}

	list, err := s.users.ListUsers(ctx, filter)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &api.ListUsersResponse{Users: make([]models.User, 0, len(list))}
	for _, u := range list {
		resp.Users = append(resp.Users, *u)
	}
	return resp, nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *api.CreateUserRequest) (*api.UserResponse, error) {
	u, err := s.users.CreateUser(ctx, models.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "User created", "user_id", u.ID, "role", u.Role)
	return &api.UserResponse{User: *u}, nil
}

func (s *GRPCServer) CreateStore(ctx context.Context, req *api.CreateStoreRequest) (*api.StoreResponse, error) {
	st, err := s.stores.CreateStore(ctx, models.StoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Store created", "store_id", st.ID, "owner_id", st.OwnerID)
	return &api.StoreResponse{Store: *st}, nil
}

// ListStores returns store cards. Regular users also get their own rating
// on each card.
func (s *GRPCServer) ListStores(ctx context.Context, req *api.ListStoresRequest) (*api.ListStoresResponse, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	var viewer string
	switch id.Role {
	case models.RoleUser:
		viewer = id.UserID
	case models.RoleAdmin, models.RoleStoreOwner:
	}

	cards, err := s.dashboard.StoreCards(ctx, models.StoreFilter{
		Fields: api.SearchFields(req.Fields),
		Query:  req.Query,
	}, viewer)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &api.ListStoresResponse{Stores: make([]api.StoreCard, 0, len(cards))}
	for _, c := range cards {
		card := api.StoreCard{Store: *c.Store, Average: api.FromAverage(c.Average)}
		if c.HasRated {
			v := c.MyRating
			card.MyRating = &v
		}
		resp.Stores = append(resp.Stores, card)
	}
	return resp, nil
}

// StoreRatings is open to admins for any store and to store owners for
// their own store only.
func (s *GRPCServer) StoreRatings(ctx context.Context, req *api.StoreRatingsRequest) (*api.StoreOverview, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	switch id.Role {
	case models.RoleAdmin:
	case models.RoleStoreOwner:
		st, err := s.stores.GetStore(ctx, req.StoreID)
		if err != nil {
			return nil, toStatus(err)
		}
		if st.OwnerID != id.UserID {
			return nil, status.Error(codes.PermissionDenied, "not the owner of this store")
		}
	case models.RoleUser:
		return nil, status.Error(codes.PermissionDenied, "forbidden")
	}

	ov, err := s.dashboard.StoreOverview(ctx, req.StoreID)
	if err != nil {
		return nil, toStatus(err)
	}
	return overviewResponse(ov), nil
}

func (s *GRPCServer) SubmitRating(ctx context.Context, req *api.SubmitRatingRequest) (*api.SubmitRatingResponse, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	r, created, err := s.ratings.UpsertRating(ctx, req.StoreID, id.UserID, req.Rating)
	if err != nil {
		return nil, toStatus(err)
	}

	s.metrics.RatingSubmitted(created)
	s.logger.Info(ctx, "Rating saved", "store_id", r.StoreID, "user_id", r.UserID, "rating", r.Value, "created", created)
	return &api.SubmitRatingResponse{Rating: *r, Created: created}, nil
}

func (s *GRPCServer) PlatformStats(ctx context.Context, req *api.PlatformStatsRequest) (*api.PlatformStatsResponse, error) {
	stats, err := s.dashboard.PlatformStats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	byRole := make(map[string]int, len(stats.UsersByRole))
	for role, n := range stats.UsersByRole {
		byRole[string(role)] = n
	}

	return &api.PlatformStatsResponse{
		TotalUsers:   stats.TotalUsers,
		TotalStores:  stats.TotalStores,
		TotalRatings: stats.TotalRatings,
		UsersByRole:  byRole,
		Average:      api.FromAverage(stats.Average),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

func (s *GRPCServer) MyStore(ctx context.Context, req *api.MyStoreRequest) (*api.StoreOverview, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	ov, err := s.dashboard.OwnerOverview(ctx, id.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return overviewResponse(ov), nil
}

func (s *GRPCServer) identity(ctx context.Context) (auth.Identity, error) {
	id, ok := identityFrom(ctx)
	if !ok {
		return auth.Identity{}, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return id, nil
}

func overviewResponse(ov *services.StoreOverview) *api.StoreOverview {
	resp := &api.StoreOverview{
		Store:        *ov.Store,
		Average:      api.FromAverage(ov.Average),
		Distribution: ov.Distribution,
		Recent:       make([]models.Rating, 0, len(ov.Recent)),
	}
	for _, r := range ov.Recent {
		resp.Recent = append(resp.Recent, *r)
	}
	return resp
}
