package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

// RatingService is the rating engine: it records ratings and aggregates them
// per store.
type RatingService struct {
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewRatingService(m repomanager.RepositoryManager) *RatingService {
	return &RatingService{repomanager: m, now: time.Now}
}

// UpsertRating records userID's rating of storeID. A second submission for
// the same pair overwrites the value and timestamp of the first and keeps its
// id; created tells the two cases apart.
func (s *RatingService) UpsertRating(ctx context.Context, storeID, userID string, value int) (*models.Rating, bool, error) {
	if fe := validation.ValidateRating(value); fe != nil {
		return nil, false, validation.Errors{fe}
	}

	if _, err := s.repomanager.Stores().GetByID(ctx, storeID); err != nil {
		return nil, false, err
	}

	r, created, err := s.repomanager.Ratings().Upsert(ctx, &models.Rating{
		StoreID:   storeID,
		UserID:    userID,
		Value:     value,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, false, fmt.Errorf("error saving rating: %w", err)
	}
	return r, created, nil
}

func (s *RatingService) AverageRating(ctx context.Context, storeID string) (models.Average, error) {
	ratings, err := s.forStore(ctx, storeID)
	if err != nil {
		return models.Average{}, err
	}
	return models.AverageOf(ratings), nil
}

func (s *RatingService) RatingDistribution(ctx context.Context, storeID string) (models.Distribution, error) {
	ratings, err := s.forStore(ctx, storeID)
	if err != nil {
		return models.Distribution{}, err
	}
	return models.DistributionOf(ratings), nil
}

// UserRatingFor returns the value userID gave storeID; ok is false when they
// have not rated it.
func (s *RatingService) UserRatingFor(ctx context.Context, storeID, userID string) (value int, ok bool, err error) {
	r, err := s.repomanager.Ratings().FindByStoreAndUser(ctx, storeID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return r.Value, true, nil
}

// ListRatingsForStore returns the store's ratings, newest first. Ratings with
// the same timestamp come in reverse submission order.
func (s *RatingService) ListRatingsForStore(ctx context.Context, storeID string) ([]*models.Rating, error) {
	list, err := s.repomanager.Ratings().ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("error listing ratings: %w", err)
	}

	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// PlatformAverage is the mean over every rating on the platform.
func (s *RatingService) PlatformAverage(ctx context.Context) (models.Average, error) {
	list, err := s.repomanager.Ratings().List(ctx)
	if err != nil {
		return models.Average{}, fmt.Errorf("error listing ratings: %w", err)
	}
	return models.AverageOf(values(list)), nil
}

func (s *RatingService) forStore(ctx context.Context, storeID string) ([]models.Rating, error) {
	list, err := s.repomanager.Ratings().ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("error listing ratings: %w", err)
	}
	return values(list), nil
}

func values(list []*models.Rating) []models.Rating {
	res := make([]models.Rating, 0, len(list))
	for _, r := range list {
		res = append(res, *r)
	}
	return res
}

func (s *RatingService) CountRatings(ctx context.Context) (int, error) {
	return s.repomanager.Ratings().Count(ctx)
}
