package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratespot/ratespot/internal/domain/entity"
	"github.com/ratespot/ratespot/internal/domain/repository"
)

type RatingRepository struct {
	pool *pgxpool.Pool
}

func NewRatingRepository(pool *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{pool: pool}
}

// Upsert inserts or overwrites the caller's rating for a store in a
// single atomic statement. The UNIQUE (user_id, store_id) constraint
// resolves concurrent first submissions; xmax = 0 distinguishes a fresh
// insert from an overwrite.
func (r *RatingRepository) Upsert(ctx context.Context, userID, storeID string, value int) (*entity.Rating, bool, error) {
	const query = `
        INSERT INTO ratings (user_id, store_id, rating)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, store_id)
        DO UPDATE SET rating = EXCLUDED.rating
        RETURNING id, user_id, store_id, rating, created_at, (xmax = 0) AS inserted
    `

	rating := &entity.Rating{}
	var inserted bool
	err := r.pool.QueryRow(ctx, query, userID, storeID, value).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.StoreID,
		&rating.Value,
		&rating.CreatedAt,
		&inserted,
	)
	if err != nil {
		return nil, false, fmt.Errorf("upsert rating: %w", err)
	}
	return rating, inserted, nil
}

func (r *RatingRepository) GetByUserAndStore(ctx context.Context, userID, storeID string) (*entity.Rating, error) {
	rating := &entity.Rating{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, store_id, rating, created_at
		FROM ratings
		WHERE user_id = $1 AND store_id = $2
	`, userID, storeID)
	if err := row.Scan(&rating.ID, &rating.UserID, &rating.StoreID, &rating.Value, &rating.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rating, nil
}

func (r *RatingRepository) ListByUser(ctx context.Context, userID string) ([]entity.RatingWithStore, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rt.id, rt.user_id, rt.store_id, rt.rating, rt.created_at,
		       s.id, s.name, s.email, s.address, COALESCE(s.owner_id::text, ''), s.created_at
		FROM ratings rt
		JOIN stores s ON s.id = rt.store_id
		WHERE rt.user_id = $1
		ORDER BY rt.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.RatingWithStore, 0)
	for rows.Next() {
		var rw entity.RatingWithStore
		if err := rows.Scan(&rw.ID, &rw.UserID, &rw.StoreID, &rw.Value, &rw.CreatedAt,
			&rw.Store.ID, &rw.Store.Name, &rw.Store.Email, &rw.Store.Address, &rw.Store.OwnerID, &rw.Store.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rw)
	}
	return out, rows.Err()
}

func (r *RatingRepository) ListByStore(ctx context.Context, storeID string) ([]entity.RatingWithUser, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rt.id, rt.user_id, rt.store_id, rt.rating, rt.created_at,
		       u.id, u.name, u.email, u.role, u.address, u.created_at
		FROM ratings rt
		JOIN users u ON u.id = rt.user_id
		WHERE rt.store_id = $1
		ORDER BY rt.created_at
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.RatingWithUser, 0)
	for rows.Next() {
		var rw entity.RatingWithUser
		if err := rows.Scan(&rw.ID, &rw.UserID, &rw.StoreID, &rw.Value, &rw.CreatedAt,
			&rw.User.ID, &rw.User.Name, &rw.User.Email, &rw.User.Role, &rw.User.Address, &rw.User.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rw)
	}
	return out, rows.Err()
}

// Aggregate returns the rounded average and count for a store.
func (r *RatingRepository) Aggregate(ctx context.Context, storeID string) (entity.RatingAggregate, error) {
	const query = `
        SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0)::float8 AS average,
               COUNT(*)::int8 AS count
        FROM ratings
        WHERE store_id = $1
    `
	var agg entity.RatingAggregate
	if err := r.pool.QueryRow(ctx, query, storeID).Scan(&agg.Average, &agg.Count); err != nil {
		return entity.RatingAggregate{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	return agg, nil
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n)
	return n, err
}

var _ repository.RatingRepository = (*RatingRepository)(nil)
