package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/models"
)

// PlatformStats is the admin overview.
type PlatformStats struct {
	TotalUsers   int
	TotalStores  int
	TotalRatings int
	UsersByRole  map[models.Role]int
	Average      models.Average
}

// StoreCard is one row of a store listing: the store, its average and, for a
// viewing user, the rating they gave it.
type StoreCard struct {
	Store    *models.Store
	Average  models.Average
	MyRating int
	HasRated bool
}

// StoreOverview is what the owner dashboard shows for one store.
type StoreOverview struct {
	Store        *models.Store
	Average      models.Average
	Distribution models.Distribution
	Recent       []*models.Rating
}

// DashboardService assembles the read models behind the three role
// dashboards out of the other services.
type DashboardService struct {
	users   *UserService
	stores  *StoreService
	ratings *RatingService
}

func NewDashboardService(users *UserService, stores *StoreService, ratings *RatingService) *DashboardService {
	return &DashboardService{users: users, stores: stores, ratings: ratings}
}

func (s *DashboardService) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	users, err := s.users.ListUsers(ctx, models.UserFilter{})
	if err != nil {
		return nil, err
	}
	stores, err := s.stores.CountStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting stores: %w", err)
	}
	ratings, err := s.ratings.CountRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting ratings: %w", err)
	}
	avg, err := s.ratings.PlatformAverage(ctx)
	if err != nil {
		return nil, err
	}

	byRole := make(map[models.Role]int, len(models.Roles()))
	for _, r := range models.Roles() {
		byRole[r] = 0
	}
	for _, u := range users {
		byRole[u.Role]++
	}

	return &PlatformStats{
		TotalUsers:   len(users),
		TotalStores:  stores,
		TotalRatings: ratings,
		UsersByRole:  byRole,
		Average:      avg,
	}, nil
}

// StoreCards lists stores matching filter with their averages. When viewerID
// is not empty each card also carries that user's own rating.
func (s *DashboardService) StoreCards(ctx context.Context, filter models.StoreFilter, viewerID string) ([]StoreCard, error) {
	stores, err := s.stores.ListStores(ctx, filter)
	if err != nil {
		return nil, err
	}

	cards := make([]StoreCard, 0, len(stores))
	for _, st := range stores {
		avg, err := s.ratings.AverageRating(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		card := StoreCard{Store: st, Average: avg}
		if viewerID != "" {
			card.MyRating, card.HasRated, err = s.ratings.UserRatingFor(ctx, st.ID, viewerID)
			if err != nil {
				return nil, err
			}
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// StoreOverview aggregates every rating of storeID. It fails with
// common.ErrorNotFound for an unknown store.
func (s *DashboardService) StoreOverview(ctx context.Context, storeID string) (*StoreOverview, error) {
	st, err := s.stores.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.overview(ctx, st)
}

// OwnerOverview is StoreOverview for the store ownerID owns. An owner without
// a store gets common.ErrorNotFound.
func (s *DashboardService) OwnerOverview(ctx context.Context, ownerID string) (*StoreOverview, error) {
	st, err := s.stores.FindStoreByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.overview(ctx, st)
}

func (s *DashboardService) overview(ctx context.Context, st *models.Store) (*StoreOverview, error) {
	recent, err := s.ratings.ListRatingsForStore(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	vals := values(recent)
	return &StoreOverview{
		Store:        st,
		Average:      models.AverageOf(vals),
		Distribution: models.DistributionOf(vals),
		Recent:       recent,
	}, nil
}
