package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ratespot/ratespot/internal/domain/entity"
	repo "github.com/ratespot/ratespot/internal/domain/repository"
)

// RatingService implements rating submission and the per-user and
// per-store listings.
type RatingService struct {
	Ratings repo.RatingRepository
	Stores  repo.StoreRepository
	Logger  *logrus.Logger
}

func NewRatingService(ratings repo.RatingRepository, stores repo.StoreRepository, logger *logrus.Logger) *RatingService {
	return &RatingService{Ratings: ratings, Stores: stores, Logger: logger}
}

// Submit records the caller's rating for a store, overwriting any
// previous one. Submitting the same value twice leaves exactly one row
// and the same aggregate as submitting once. The returned flag reports
// whether the rating was newly created.
func (s *RatingService) Submit(ctx context.Context, userID, storeID string, value int) (*entity.Rating, bool, error) {
	if value < entity.RatingMin || value > entity.RatingMax {
		return nil, false, ErrInvalidRating
	}
	if _, err := s.Stores.GetByID(ctx, storeID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	return s.Ratings.Upsert(ctx, userID, storeID, value)
}

// ListForUser returns the caller's ratings with their stores.
func (s *RatingService) ListForUser(ctx context.Context, userID string) ([]entity.RatingWithStore, error) {
	return s.Ratings.ListByUser(ctx, userID)
}

// ListForStore returns a store's ratings with their authors.
func (s *RatingService) ListForStore(ctx context.Context, storeID string) ([]entity.RatingWithUser, error) {
	if _, err := s.Stores.GetByID(ctx, storeID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Ratings.ListByStore(ctx, storeID)
}
