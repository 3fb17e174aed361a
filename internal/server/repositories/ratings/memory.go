package ratings

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
)

type key struct {
	storeID string
	userID  string
}

type MemoryRepository struct {
	mu    sync.RWMutex
	items []models.Rating
	byKey map[key]int
	byID  map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byKey: make(map[key]int),
		byID:  make(map[string]int),
	}
}

// Upsert replaces the value and time of the existing rating for the
// (store, user) pair, keeping its ID, or inserts a new one. An insert with an
// ID already taken by another pair fails with common.ErrorAlreadyExists.
func (r *MemoryRepository) Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{storeID: rating.StoreID, userID: rating.UserID}
	if i, ok := r.byKey[k]; ok {
		r.items[i].Value = rating.Value
		r.items[i].CreatedAt = rating.CreatedAt
		saved := r.items[i]
		return &saved, false, nil
	}

	saved := *rating
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if _, ok := r.byID[saved.ID]; ok {
		return nil, false, common.ErrorAlreadyExists
	}
	r.items = append(r.items, saved)
	r.byKey[k] = len(r.items) - 1
	r.byID[saved.ID] = len(r.items) - 1

	return &saved, true, nil
}

func (r *MemoryRepository) FindByStoreAndUser(ctx context.Context, storeID, userID string) (*models.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byKey[key{storeID: storeID, userID: userID}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	rt := r.items[i]
	return &rt, nil
}

func (r *MemoryRepository) ListByStore(ctx context.Context, storeID string) ([]*models.Rating, error) {
	return r.filter(func(rt *models.Rating) bool { return rt.StoreID == storeID }), nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Rating, error) {
	return r.filter(func(rt *models.Rating) bool { return rt.UserID == userID }), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Rating, error) {
	return r.filter(func(*models.Rating) bool { return true }), nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *MemoryRepository) filter(match func(*models.Rating) bool) []*models.Rating {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*models.Rating, 0)
	for i := range r.items {
		if match(&r.items[i]) {
			rt := r.items[i]
			res = append(res, &rt)
		}
	}
	return res
}
