package stores

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items []models.Store
	byID  map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]int)}
}

func (r *MemoryRepository) Create(ctx context.Context, store *models.Store) (*models.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := *store
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, ok := r.byID[s.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.items = append(r.items, s)
	r.byID[s.ID] = len(r.items) - 1

	return &s, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	s := r.items[i]
	return &s, nil
}

func (r *MemoryRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].OwnerID == ownerID {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*models.Store, 0, len(r.items))
	for i := range r.items {
		s := r.items[i]
		res = append(res, &s)
	}
	return res, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
