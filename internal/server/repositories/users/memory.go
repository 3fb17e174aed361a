package users

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
)

// MemoryRepository keeps users in a slice guarded by a RWMutex.
// Callers only ever see copies of the stored records.
type MemoryRepository struct {
	mu      sync.RWMutex
	items   []models.User
	byID    map[string]int
	byEmail map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]int),
		byEmail: make(map[string]int),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if _, ok := r.byID[u.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.items = append(r.items, u)
	r.byID[u.ID] = len(r.items) - 1
	r.byEmail[u.Email] = len(r.items) - 1

	return &u, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.items[i]
	return &u, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.items[i]
	return &u, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*models.User, 0, len(r.items))
	for i := range r.items {
		u := r.items[i]
		res = append(res, &u)
	}
	return res, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
