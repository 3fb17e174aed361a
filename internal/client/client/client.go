package client

import (
	"context"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Signup(ctx context.Context, in models.UserInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout()
	Me(ctx context.Context) (*models.User, error)

	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	CreateStore(ctx context.Context, in models.StoreInput) (*models.Store, error)
	PlatformStats(ctx context.Context) (*api.PlatformStatsResponse, error)

	ListStores(ctx context.Context, filter models.StoreFilter) ([]api.StoreCard, error)
	SubmitRating(ctx context.Context, storeID string, value int) (*models.Rating, bool, error)

	StoreRatings(ctx context.Context, storeID string) (*api.StoreOverview, error)
	MyStore(ctx context.Context) (*api.StoreOverview, error)
}
