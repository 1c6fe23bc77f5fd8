package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lansen/driveadmin/internal/pkg/apperrors"
)

func newTestSessionService(lifetime time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey: "test-secret",
		Lifetime:  lifetime,
		Issuer:    "driveadmin-test",
	})
}

func TestSessionIssueAndValidate(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.Issue(42, "root", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "root", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "driveadmin-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionValidateExpired(t *testing.T) {
	svc := newTestSessionService(-time.Minute)

	token, err := svc.Issue(1, "root", true)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestSessionValidateTampered(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.Issue(1, "root", true)
	require.NoError(t, err)

	other := NewSessionService(SessionConfig{
		SecretKey: "different-secret",
		Lifetime:  time.Hour,
		Issuer:    "driveadmin-test",
	})
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	_, err = svc.Validate("garbage.token.value")
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}

func TestSessionNonAdminClaim(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.Issue(7, "student", false)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}
