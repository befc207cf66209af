package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratespot/ratespot/internal/domain/entity"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	u, token, err := f.Auth.Register(ctx, RegisterInput{
		Name:     "Johnathan Maxwell Doe",
		Email:    "john@example.com",
		Password: "Password123!",
		Address:  "12 Main Street",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEqual(t, "Password123!", u.Password)

	// registration opens a session immediately
	userID, err := f.Sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)

	logged, token2, err := f.Auth.Login(ctx, "john@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.NotEqual(t, token, token2)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	in := RegisterInput{
		Name:     "Johnathan Maxwell Doe",
		Email:    "john@example.com",
		Password: "Password123!",
	}
	_, _, err := f.Auth.Register(ctx, in)
	require.NoError(t, err)

	in.Name = "Another Person Entirely OK"
	_, _, err = f.Auth.Register(ctx, in)
	assert.ErrorIs(t, err, ErrEmailTaken)

	// the failed attempt left no extra row
	count, err := f.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLoginBadCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, _, err := f.Auth.Register(ctx, RegisterInput{
		Name:     "Johnathan Maxwell Doe",
		Email:    "john@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	// wrong password and unknown email report the same error
	_, _, err = f.Auth.Login(ctx, "john@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.Auth.Login(ctx, "nobody@example.com", "Password123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, token, err := f.Auth.Register(ctx, RegisterInput{
		Name:     "Johnathan Maxwell Doe",
		Email:    "john@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	require.NoError(t, f.Auth.Logout(ctx, token))
	_, err = f.Sessions.Resolve(ctx, token)
	assert.Error(t, err)
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	u, _, err := f.Auth.Register(ctx, RegisterInput{
		Name:     "Johnathan Maxwell Doe",
		Email:    "john@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	err = f.Auth.UpdatePassword(ctx, u.ID, "not-the-password", "NewPassword1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, f.Auth.UpdatePassword(ctx, u.ID, "Password123!", "NewPassword1!"))

	_, _, err = f.Auth.Login(ctx, "john@example.com", "Password123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.Auth.Login(ctx, "john@example.com", "NewPassword1!")
	assert.NoError(t, err)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	f := newFixture()
	_, _, err := f.Auth.Register(context.Background(), RegisterInput{
		Name:     "Johnathan Maxwell Doe",
		Email:    "john@example.com",
		Password: "Password123!",
		Role:     entity.Role("superuser"),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}
