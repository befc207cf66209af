package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratespot/ratespot/internal/domain/entity"
)

func (f *fixture) mustUser(t *testing.T, email string) *entity.User {
	t.Helper()
	u, _, err := f.Auth.Register(context.Background(), RegisterInput{
		Name:     "Rating Test Account Holder",
		Email:    email,
		Password: "Password123!",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) mustStore(t *testing.T, name, ownerID string) *entity.Store {
	t.Helper()
	st, err := f.StoreSvc.Create(context.Background(), CreateInput{
		Name:    name,
		Email:   name + "@example.com",
		Address: "1 Market Square",
		OwnerID: ownerID,
	})
	require.NoError(t, err)
	return st
}

func TestSubmitCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u := f.mustUser(t, "alice@example.com")
	st := f.mustStore(t, "corner-shop", "")

	r, created, err := f.RatingSvc.Submit(ctx, u.ID, st.ID, 4)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 4, r.Value)

	// resubmission overwrites in place, no second row
	r2, created, err := f.RatingSvc.Submit(ctx, u.ID, st.ID, 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, r2.Value)
	assert.Equal(t, r.ID, r2.ID)

	count, err := f.Ratings.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	agg, err := f.Ratings.Aggregate(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, agg.Average)
	assert.Equal(t, int64(1), agg.Count)
}

func TestSubmitSameValueTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u := f.mustUser(t, "alice@example.com")
	st := f.mustStore(t, "corner-shop", "")

	_, _, err := f.RatingSvc.Submit(ctx, u.ID, st.ID, 5)
	require.NoError(t, err)
	_, created, err := f.RatingSvc.Submit(ctx, u.ID, st.ID, 5)
	require.NoError(t, err)
	assert.False(t, created)

	agg, err := f.Ratings.Aggregate(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, agg.Average)
	assert.Equal(t, int64(1), agg.Count)
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u := f.mustUser(t, "alice@example.com")
	st := f.mustStore(t, "corner-shop", "")

	for _, v := range []int{0, 6, -1} {
		_, _, err := f.RatingSvc.Submit(ctx, u.ID, st.ID, v)
		assert.ErrorIs(t, err, ErrInvalidRating, "value %d", v)
	}

	_, _, err := f.RatingSvc.Submit(ctx, u.ID, "00000000-0000-0000-0000-000000000000", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAggregateAcrossUsers(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.mustUser(t, "alice@example.com")
	bob := f.mustUser(t, "bob@example.com")
	st := f.mustStore(t, "corner-shop", "")

	_, _, err := f.RatingSvc.Submit(ctx, alice.ID, st.ID, 5)
	require.NoError(t, err)
	_, _, err = f.RatingSvc.Submit(ctx, bob.ID, st.ID, 4)
	require.NoError(t, err)

	agg, err := f.Ratings.Aggregate(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, agg.Average)
	assert.Equal(t, int64(2), agg.Count)
}

func TestListForUserAndStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.mustUser(t, "alice@example.com")
	bob := f.mustUser(t, "bob@example.com")
	s1 := f.mustStore(t, "corner-shop", "")
	s2 := f.mustStore(t, "book-haven", "")

	_, _, err := f.RatingSvc.Submit(ctx, alice.ID, s1.ID, 5)
	require.NoError(t, err)
	_, _, err = f.RatingSvc.Submit(ctx, alice.ID, s2.ID, 3)
	require.NoError(t, err)
	_, _, err = f.RatingSvc.Submit(ctx, bob.ID, s1.ID, 4)
	require.NoError(t, err)

	mine, err := f.RatingSvc.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "corner-shop", mine[0].Store.Name)

	byStore, err := f.RatingSvc.ListForStore(ctx, s1.ID)
	require.NoError(t, err)
	require.Len(t, byStore, 2)
	for _, r := range byStore {
		assert.Empty(t, r.User.Password)
	}

	_, err = f.RatingSvc.ListForStore(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}
