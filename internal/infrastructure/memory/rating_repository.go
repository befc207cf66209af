package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ratespot/ratespot/internal/domain/entity"
	"github.com/ratespot/ratespot/internal/domain/repository"
)

type RatingRepository struct {
	mu      sync.RWMutex
	ratings []entity.Rating

	// Join sources for ListByUser / ListByStore; assigned after
	// construction because stores also reference ratings.
	Users  *UserRepository
	Stores *StoreRepository
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{}
}

// Upsert mirrors the SQL ON CONFLICT behavior: one row per
// (user, store), value overwritten on resubmission.
func (r *RatingRepository) Upsert(_ context.Context, userID, storeID string, value int) (*entity.Rating, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ratings {
		if r.ratings[i].UserID == userID && r.ratings[i].StoreID == storeID {
			r.ratings[i].Value = value
			out := r.ratings[i]
			return &out, false, nil
		}
	}
	rating := entity.Rating{
		ID:        uuid.NewString(),
		UserID:    userID,
		StoreID:   storeID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	r.ratings = append(r.ratings, rating)
	return &rating, true, nil
}

func (r *RatingRepository) GetByUserAndStore(_ context.Context, userID, storeID string) (*entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.ratings {
		if rt.UserID == userID && rt.StoreID == storeID {
			out := rt
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *RatingRepository) ListByUser(ctx context.Context, userID string) ([]entity.RatingWithStore, error) {
	r.mu.RLock()
	ratings := make([]entity.Rating, len(r.ratings))
	copy(ratings, r.ratings)
	r.mu.RUnlock()

	out := make([]entity.RatingWithStore, 0)
	for _, rt := range ratings {
		if rt.UserID != userID {
			continue
		}
		rw := entity.RatingWithStore{Rating: rt}
		if r.Stores != nil {
			if s, err := r.Stores.GetByID(ctx, rt.StoreID); err == nil {
				rw.Store = *s
			}
		}
		out = append(out, rw)
	}
	return out, nil
}

func (r *RatingRepository) ListByStore(ctx context.Context, storeID string) ([]entity.RatingWithUser, error) {
	r.mu.RLock()
	ratings := make([]entity.Rating, len(r.ratings))
	copy(ratings, r.ratings)
	r.mu.RUnlock()

	out := make([]entity.RatingWithUser, 0)
	for _, rt := range ratings {
		if rt.StoreID != storeID {
			continue
		}
		rw := entity.RatingWithUser{Rating: rt}
		if r.Users != nil {
			if u, err := r.Users.GetByID(ctx, rt.UserID); err == nil {
				u.Password = ""
				rw.User = *u
			}
		}
		out = append(out, rw)
	}
	return out, nil
}

func (r *RatingRepository) Aggregate(_ context.Context, storeID string) (entity.RatingAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum, count int64
	for _, rt := range r.ratings {
		if rt.StoreID == storeID {
			sum += int64(rt.Value)
			count++
		}
	}
	return entity.RatingAggregate{
		Average: entity.RoundAverage(sum, count),
		Count:   count,
	}, nil
}

func (r *RatingRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.ratings)), nil
}

var _ repository.RatingRepository = (*RatingRepository)(nil)
