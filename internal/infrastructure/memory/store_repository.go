package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ratespot/ratespot/internal/domain/entity"
	"github.com/ratespot/ratespot/internal/domain/repository"
)

type StoreRepository struct {
	mu      sync.RWMutex
	stores  []entity.Store
	ratings *RatingRepository // aggregate source for ListWithAggregates
}

// NewStoreRepository creates a store repository. The rating repository
// supplies the aggregates for ListWithAggregates, matching the SQL
// left join.
func NewStoreRepository(ratings *RatingRepository) *StoreRepository {
	return &StoreRepository{ratings: ratings}
}

func (r *StoreRepository) Create(_ context.Context, s *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	r.stores = append(r.stores, *s)
	return nil
}

func (r *StoreRepository) GetByID(_ context.Context, id string) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.stores {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *StoreRepository) List(_ context.Context) ([]entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Store, len(r.stores))
	copy(out, r.stores)
	return out, nil
}

func (r *StoreRepository) ListWithAggregates(ctx context.Context) ([]entity.StoreWithAggregate, error) {
	r.mu.RLock()
	stores := make([]entity.Store, len(r.stores))
	copy(stores, r.stores)
	r.mu.RUnlock()

	out := make([]entity.StoreWithAggregate, 0, len(stores))
	for _, s := range stores {
		agg := entity.RatingAggregate{}
		if r.ratings != nil {
			var err error
			agg, err = r.ratings.Aggregate(ctx, s.ID)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, entity.StoreWithAggregate{
			Store:         s,
			AverageRating: agg.Average,
			TotalRatings:  agg.Count,
		})
	}
	return out, nil
}

func (r *StoreRepository) Search(_ context.Context, query string) ([]entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	out := make([]entity.Store, 0)
	for _, s := range r.stores {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Address), q) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *StoreRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.stores)), nil
}

var _ repository.StoreRepository = (*StoreRepository)(nil)
