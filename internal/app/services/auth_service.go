package services

import (
	"context"
	"strings"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/auth"
	"github.com/lansen/driveadmin/internal/pkg/logger"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	SessionService() *auth.SessionService
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userStore UserStore
	sessions  *auth.SessionService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userStore UserStore, sessions *auth.SessionService) AuthService {
	return &authServiceImpl{
		userStore: userStore,
		sessions:  sessions,
	}
}

// Login verifies the credentials and issues a session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		logger.Warn().Str("username", username).Msg("Login attempt with wrong password")
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error issuing session token")
		return nil, "", err
	}

	return user, token, nil
}

// SessionService exposes the token issuer so the transport layer can
// read cookie lifetimes and validate tokens.
func (s *authServiceImpl) SessionService() *auth.SessionService {
	return s.sessions
}
