package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

type StoreService struct {
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewStoreService(m repomanager.RepositoryManager) *StoreService {
	return &StoreService{repomanager: m, now: time.Now}
}

// CreateStore validates in and registers the store. OwnerID must name an
// existing user with the store owner role who has no store yet.
func (s *StoreService) CreateStore(ctx context.Context, in models.StoreInput) (*models.Store, error) {
	if err := validation.ValidateStore(in); err != nil {
		return nil, err
	}

	owner, err := s.repomanager.Users().GetByID(ctx, in.OwnerID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error looking up owner: %w", err)
	}
	if err != nil || owner.Role != models.RoleStoreOwner {
		return nil, validation.Errors{{Field: validation.FieldOwnerID, Kind: validation.OwnerInvalid}}
	}

	_, err = s.repomanager.Stores().GetByOwner(ctx, in.OwnerID)
	if err == nil {
		return nil, validation.Errors{{Field: validation.FieldOwnerID, Kind: validation.OwnerHasStore}}
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error looking up owner store: %w", err)
	}

	st, err := s.repomanager.Stores().Create(ctx, &models.Store{
		Name:      in.Name,
		Email:     in.Email,
		Address:   in.Address,
		OwnerID:   in.OwnerID,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating store: %w", err)
	}
	return st, nil
}

func (s *StoreService) GetStore(ctx context.Context, id string) (*models.Store, error) {
	return s.repomanager.Stores().GetByID(ctx, id)
}

// FindStoreByOwner returns the store owned by ownerID or common.ErrorNotFound.
func (s *StoreService) FindStoreByOwner(ctx context.Context, ownerID string) (*models.Store, error) {
	return s.repomanager.Stores().GetByOwner(ctx, ownerID)
}

func (s *StoreService) ListStores(ctx context.Context, filter models.StoreFilter) ([]*models.Store, error) {
	all, err := s.repomanager.Stores().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing stores: %w", err)
	}

	res := make([]*models.Store, 0, len(all))
	for _, st := range all {
		values := map[models.SearchField]string{
			models.SearchByName:    st.Name,
			models.SearchByEmail:   st.Email,
			models.SearchByAddress: st.Address,
		}
		if matchesQuery(values, filter.Fields, filter.Query) {
			res = append(res, st)
		}
	}
	return res, nil
}

func (s *StoreService) CountStores(ctx context.Context) (int, error) {
	return s.repomanager.Stores().Count(ctx)
}
