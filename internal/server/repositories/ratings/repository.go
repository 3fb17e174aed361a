package ratings

import (
	"context"

	"github.com/dmitrijs2005/storerating/internal/models"
)

type Repository interface {
	// Upsert inserts rating or, when the same user already rated the same
	// store, replaces Value and CreatedAt of the existing record keeping its
	// ID. created reports which of the two happened. The lookup and the write
	// are atomic.
	Upsert(ctx context.Context, rating *models.Rating) (saved *models.Rating, created bool, err error)
	FindByStoreAndUser(ctx context.Context, storeID, userID string) (*models.Rating, error)
	ListByStore(ctx context.Context, storeID string) ([]*models.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Rating, error)
	List(ctx context.Context) ([]*models.Rating, error)
	Count(ctx context.Context) (int, error)
}
