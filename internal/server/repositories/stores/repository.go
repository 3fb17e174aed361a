package stores

import (
	"context"

	"github.com/dmitrijs2005/storerating/internal/models"
)

type Repository interface {
	// Create stores a copy of store, assigning an ID when it has none.
	Create(ctx context.Context, store *models.Store) (*models.Store, error)
	GetByID(ctx context.Context, id string) (*models.Store, error)
	// GetByOwner returns the first store registered for ownerID.
	GetByOwner(ctx context.Context, ownerID string) (*models.Store, error)
	List(ctx context.Context) ([]*models.Store, error)
	Count(ctx context.Context) (int, error)
}
