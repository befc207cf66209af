package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/ratespot/ratespot/internal/domain/entity"
	repo "github.com/ratespot/ratespot/internal/domain/repository"
)

// StoreService implements store creation, the aggregate listings, the
// owner/admin stats view, search, and the admin summary.
type StoreService struct {
	Stores  repo.StoreRepository
	Users   repo.UserRepository
	Ratings repo.RatingRepository
	Logger  *logrus.Logger

	// ES is optional; when nil search falls back to the repository.
	ES            *elasticsearch.Client
	ESStoresIndex string
}

func NewStoreService(stores repo.StoreRepository, users repo.UserRepository, ratings repo.RatingRepository, logger *logrus.Logger) *StoreService {
	return &StoreService{Stores: stores, Users: users, Ratings: ratings, Logger: logger}
}

// CreateInput is the validated store-creation payload.
type CreateInput struct {
	Name    string
	Email   string
	Address string
	OwnerID string
}

// Create adds a store. Handlers gate this behind the admin role.
func (s *StoreService) Create(ctx context.Context, in CreateInput) (*entity.Store, error) {
	if in.OwnerID != "" {
		if _, err := s.Users.GetByID(ctx, in.OwnerID); err != nil {
			return nil, ErrNotFound
		}
	}
	st := &entity.Store{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		OwnerID: in.OwnerID,
	}
	if err := s.Stores.Create(ctx, st); err != nil {
		return nil, err
	}
	_ = s.indexStore(ctx, st)
	return st, nil
}

// ListWithAggregates returns every store with its read-time average and
// count; unrated stores appear with 0.
func (s *StoreService) ListWithAggregates(ctx context.Context) ([]entity.StoreWithAggregate, error) {
	return s.Stores.ListWithAggregates(ctx)
}

// Stats returns the detailed view of one store. Only admins and the
// store's owner may see it.
func (s *StoreService) Stats(ctx context.Context, requester *entity.User, storeID string) (*entity.StoreStats, error) {
	st, err := s.Stores.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if requester.Role != entity.RoleAdmin && st.OwnerID != requester.ID {
		return nil, ErrForbidden
	}

	agg, err := s.Ratings.Aggregate(ctx, storeID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.Ratings.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &entity.StoreStats{
		Store:         *st,
		AverageRating: agg.Average,
		TotalRatings:  agg.Count,
		Ratings:       ratings,
	}, nil
}

// Search matches stores by name or address. Elasticsearch is used when
// configured, the repository otherwise.
func (s *StoreService) Search(ctx context.Context, query string) ([]entity.Store, error) {
	if s.ES == nil || s.ESStoresIndex == "" {
		return s.Stores.Search(ctx, query)
	}
	stores, err := s.searchES(ctx, query)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("es search failed, falling back to repository")
		}
		return s.Stores.Search(ctx, query)
	}
	return stores, nil
}

// Summary returns the global entity counts for the admin dashboard.
func (s *StoreService) Summary(ctx context.Context) (*entity.Summary, error) {
	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.Stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.Ratings.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.Summary{TotalUsers: users, TotalStores: stores, TotalRatings: ratings}, nil
}

func (s *StoreService) indexStore(ctx context.Context, st *entity.Store) error {
	if s.ES == nil || s.ESStoresIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         st.ID,
		"name":       st.Name,
		"email":      st.Email,
		"address":    st.Address,
		"owner_id":   st.OwnerID,
		"created_at": st.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESStoresIndex, DocumentID: st.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("store_id", st.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("store_id", st.ID).Warn("es index response error")
	}
	return nil
}

func (s *StoreService) searchES(ctx context.Context, q string) ([]entity.Store, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "address"},
			},
		},
		"size": 25,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESStoresIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID        string    `json:"id"`
					Name      string    `json:"name"`
					Email     string    `json:"email"`
					Address   string    `json:"address"`
					OwnerID   string    `json:"owner_id"`
					CreatedAt time.Time `json:"created_at"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Store, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, entity.Store{
			ID:        h.Source.ID,
			Name:      h.Source.Name,
			Email:     h.Source.Email,
			Address:   h.Source.Address,
			OwnerID:   h.Source.OwnerID,
			CreatedAt: h.Source.CreatedAt,
		})
	}
	return out, nil
}
