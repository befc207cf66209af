package repository

import (
	"context"

	"github.com/ratespot/ratespot/internal/domain/entity"
)

// RatingRepository defines the interface for rating persistence and the
// read-time aggregate queries.
type RatingRepository interface {
	// Upsert inserts the rating, or overwrites the value of the
	// existing row for the same (user, store). The insert-or-update
	// decision is atomic; concurrent submissions never produce two
	// rows. The returned flag reports whether a new row was created.
	Upsert(ctx context.Context, userID, storeID string, value int) (*entity.Rating, bool, error)
	GetByUserAndStore(ctx context.Context, userID, storeID string) (*entity.Rating, error)
	// ListByUser returns the user's ratings joined with their stores,
	// in insertion order.
	ListByUser(ctx context.Context, userID string) ([]entity.RatingWithStore, error)
	// ListByStore returns a store's ratings joined with their authors,
	// in insertion order.
	ListByStore(ctx context.Context, storeID string) ([]entity.RatingWithUser, error)
	Aggregate(ctx context.Context, storeID string) (entity.RatingAggregate, error)
	Count(ctx context.Context) (int64, error)
}
