package users

import (
	"context"

	"github.com/dmitrijs2005/storerating/internal/models"
)

type Repository interface {
	// Create stores a copy of user. An empty ID is replaced with a fresh one.
	// Duplicate IDs or emails yield common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail matches the email exactly, case included.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns every user in insertion order.
	List(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
}
