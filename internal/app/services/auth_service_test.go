package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore()
	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey: "test-secret",
		Lifetime:  time.Hour,
		Issuer:    "driveadmin-test",
	})
	return NewAuthService(store, sessions), store
}

func TestLogin(t *testing.T) {
	svc, store := newTestAuthService(t)

	userSvc := NewUserService(store, 0)
	req := validCreateRequest("root")
	_, err := userSvc.CreateUser(context.Background(), req)
	require.NoError(t, err)
	// Mark the seeded account as admin the way the seeder does
	for _, u := range store.users {
		u.IsAdmin = true
	}

	t.Run("valid credentials issue an admin session", func(t *testing.T) {
		user, token, err := svc.Login(context.Background(), "root", "secret123")
		require.NoError(t, err)
		require.NotNil(t, user)
		require.NotEmpty(t, token)

		claims, err := svc.SessionService().Validate(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "root", claims.Username)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "root", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "ghost", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("blank credentials", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
