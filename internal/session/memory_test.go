package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateResolveDestroy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(time.Hour)

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// two sessions for the same user are independent
	token2, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)

	require.NoError(t, store.Destroy(ctx, token))
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// destroying again is a no-op
	assert.NoError(t, store.Destroy(ctx, token))
}

func TestMemoryResolveUnknownToken(t *testing.T) {
	store := NewMemory(time.Hour)
	_, err := store.Resolve(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = store.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryFixedExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(24 * time.Hour)

	base := time.Now()
	store.SetClock(func() time.Time { return base })

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	// still valid just before the TTL
	store.SetClock(func() time.Time { return base.Add(24*time.Hour - time.Minute) })
	_, err = store.Resolve(ctx, token)
	assert.NoError(t, err)

	// expired after the TTL, no sliding renewal from the earlier resolve
	store.SetClock(func() time.Time { return base.Add(24*time.Hour + time.Minute) })
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}
