package repository

import (
	"context"

	"github.com/ratespot/ratespot/internal/domain/entity"
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	Create(ctx context.Context, s *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	List(ctx context.Context) ([]entity.Store, error)
	// ListWithAggregates returns every store joined with its computed
	// average rating and rating count. Stores with zero ratings still
	// appear, with an average of 0.
	ListWithAggregates(ctx context.Context) ([]entity.StoreWithAggregate, error)
	Search(ctx context.Context, query string) ([]entity.Store, error)
	Count(ctx context.Context) (int64, error)
}
