package repomanager

import (
	"github.com/dmitrijs2005/storerating/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/stores"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out process-local repositories. Every call
// returns the same instance, so state is shared across services.
type InMemoryRepositoryManager struct {
	users   *users.MemoryRepository
	stores  *stores.MemoryRepository
	ratings *ratings.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:   users.NewMemoryRepository(),
		stores:  stores.NewMemoryRepository(),
		ratings: ratings.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Stores() stores.Repository {
	return m.stores
}

func (m *InMemoryRepositoryManager) Ratings() ratings.Repository {
	return m.ratings
}
