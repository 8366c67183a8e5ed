package service

import (
	"context"
	"testing"

	"innovated/internal/model"
	"innovated/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, repository.Storage) {
	t.Helper()
	storage := repository.NewMemStorage()
	svc := NewAuthService(storage)
	_, err := svc.Register(context.Background(), &model.User{
		Username: "ada",
		Password: "enigma1",
		Email:    "ada@example.com",
	})
	require.NoError(t, err)
	return svc, storage
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		u, err := svc.Login(ctx, "ada", "enigma1")
		require.NoError(t, err)
		assert.Equal(t, "ada", u.Username)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		_, wrongPass := svc.Login(ctx, "ada", "nope")
		_, unknown := svc.Login(ctx, "nobody", "enigma1")
		assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	})
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, storage := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.User{
		Username: "ada",
		Password: "different",
		Email:    "other@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The failed attempt must not have created a second record.
	u, err := storage.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestRegisterSharedEmailAllowed(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	// Email uniqueness is intentionally not enforced.
	u, err := svc.Register(ctx, &model.User{
		Username: "grace",
		Password: "hopper1",
		Email:    "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, u.ID)
}
