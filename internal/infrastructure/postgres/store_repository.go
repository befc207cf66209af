package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratespot/ratespot/internal/domain/entity"
	"github.com/ratespot/ratespot/internal/domain/repository"
)

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

func (r *StoreRepository) Create(ctx context.Context, s *entity.Store) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO stores (name, email, address, owner_id)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid)
		RETURNING id, created_at
	`, s.Name, s.Email, s.Address, s.OwnerID)
	return row.Scan(&s.ID, &s.CreatedAt)
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	s := &entity.Store{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, address, COALESCE(owner_id::text, ''), created_at
		FROM stores
		WHERE id = $1
	`, id)
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]entity.Store, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, address, COALESCE(owner_id::text, ''), created_at
		FROM stores
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStores(rows)
}

// ListWithAggregates left-joins ratings so that stores without ratings
// still appear, with an average of 0.
func (r *StoreRepository) ListWithAggregates(ctx context.Context) ([]entity.StoreWithAggregate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.name, s.email, s.address, COALESCE(s.owner_id::text, ''), s.created_at,
		       COALESCE(ROUND(AVG(rt.rating)::numeric, 1), 0)::float8 AS average_rating,
		       COUNT(rt.id)::int8 AS total_ratings
		FROM stores s
		LEFT JOIN ratings rt ON rt.store_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.StoreWithAggregate, 0)
	for rows.Next() {
		var sa entity.StoreWithAggregate
		if err := rows.Scan(&sa.ID, &sa.Name, &sa.Email, &sa.Address, &sa.OwnerID, &sa.CreatedAt,
			&sa.AverageRating, &sa.TotalRatings); err != nil {
			return nil, err
		}
		out = append(out, sa)
	}
	return out, rows.Err()
}

func (r *StoreRepository) Search(ctx context.Context, query string) ([]entity.Store, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, address, COALESCE(owner_id::text, ''), created_at
		FROM stores
		WHERE name ILIKE '%' || $1 || '%' OR address ILIKE '%' || $1 || '%'
		ORDER BY created_at
	`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStores(rows)
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&n)
	return n, err
}

func scanStores(rows pgx.Rows) ([]entity.Store, error) {
	stores := make([]entity.Store, 0)
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

var _ repository.StoreRepository = (*StoreRepository)(nil)
