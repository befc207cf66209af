package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratespot/ratespot/internal/domain/entity"
)

func (f *fixture) mustUserWithRole(t *testing.T, email string, role entity.Role) *entity.User {
	t.Helper()
	u, err := f.UserSvc.Create(context.Background(), RegisterInput{
		Name:     "Store Test Account Holder",
		Email:    email,
		Password: "Password123!",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestCreateStoreUnknownOwner(t *testing.T) {
	f := newFixture()
	_, err := f.StoreSvc.Create(context.Background(), CreateInput{
		Name:    "orphan-shop",
		Email:   "orphan@example.com",
		OwnerID: "00000000-0000-0000-0000-000000000000",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListWithAggregates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.mustUser(t, "alice@example.com")
	bob := f.mustUser(t, "bob@example.com")
	rated := f.mustStore(t, "corner-shop", "")
	unrated := f.mustStore(t, "book-haven", "")

	_, _, err := f.RatingSvc.Submit(ctx, alice.ID, rated.ID, 5)
	require.NoError(t, err)
	_, _, err = f.RatingSvc.Submit(ctx, bob.ID, rated.ID, 4)
	require.NoError(t, err)

	list, err := f.StoreSvc.ListWithAggregates(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byID := map[string]entity.StoreWithAggregate{}
	for _, s := range list {
		byID[s.ID] = s
	}
	assert.Equal(t, 4.5, byID[rated.ID].AverageRating)
	assert.Equal(t, int64(2), byID[rated.ID].TotalRatings)

	// unrated stores still appear, with zeroes
	assert.Equal(t, 0.0, byID[unrated.ID].AverageRating)
	assert.Equal(t, int64(0), byID[unrated.ID].TotalRatings)
}

func TestStatsAccessControl(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.mustUserWithRole(t, "owner@example.com", entity.RoleStoreOwner)
	admin := f.mustUserWithRole(t, "admin@example.com", entity.RoleAdmin)
	stranger := f.mustUser(t, "stranger@example.com")
	st := f.mustStore(t, "corner-shop", owner.ID)

	_, err := f.StoreSvc.Stats(ctx, stranger, st.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	stats, err := f.StoreSvc.Stats(ctx, owner, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, stats.Store.ID)

	_, err = f.StoreSvc.Stats(ctx, admin, st.ID)
	assert.NoError(t, err)

	_, err = f.StoreSvc.Stats(ctx, admin, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatsContents(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.mustUserWithRole(t, "owner@example.com", entity.RoleStoreOwner)
	alice := f.mustUser(t, "alice@example.com")
	st := f.mustStore(t, "corner-shop", owner.ID)

	// before any ratings the stats are zeroed, not an error
	stats, err := f.StoreSvc.Stats(ctx, owner, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, int64(0), stats.TotalRatings)
	assert.Empty(t, stats.Ratings)

	_, _, err = f.RatingSvc.Submit(ctx, alice.ID, st.ID, 3)
	require.NoError(t, err)

	stats, err = f.StoreSvc.Stats(ctx, owner, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, stats.AverageRating)
	assert.Equal(t, int64(1), stats.TotalRatings)
	require.Len(t, stats.Ratings, 1)
	assert.Equal(t, alice.ID, stats.Ratings[0].UserID)
	assert.Equal(t, "alice@example.com", stats.Ratings[0].User.Email)
}

func TestSearchFallsBackToRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.mustStore(t, "corner-shop", "")
	f.mustStore(t, "book-haven", "")

	// no ES client configured, the repository serves the query
	hits, err := f.StoreSvc.Search(ctx, "corner")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "corner-shop", hits[0].Name)

	hits, err = f.StoreSvc.Search(ctx, "nothing-matches")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSummaryCounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.mustUser(t, "alice@example.com")
	st := f.mustStore(t, "corner-shop", "")
	_, _, err := f.RatingSvc.Submit(ctx, alice.ID, st.ID, 5)
	require.NoError(t, err)

	sum, err := f.StoreSvc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.TotalUsers)
	assert.Equal(t, int64(1), sum.TotalStores)
	assert.Equal(t, int64(1), sum.TotalRatings)
}

func TestAdminCreateUserDuplicate(t *testing.T) {
	f := newFixture()
	f.mustUserWithRole(t, "dup@example.com", entity.RoleUser)
	_, err := f.UserSvc.Create(context.Background(), RegisterInput{
		Name:     "Store Test Account Holder",
		Email:    "dup@example.com",
		Password: "Password123!",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
