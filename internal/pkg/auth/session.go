package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lansen/driveadmin/internal/pkg/apperrors"
)

// CookieName is the name of the session cookie issued on login.
const CookieName = "session"

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey string
	Lifetime  time.Duration
	Issuer    string
}

// SessionService issues and validates signed session tokens carried in a cookie
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new SessionService
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{config: config}
}

// Claims defines the session principal
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Lifetime returns the configured session lifetime.
func (s *SessionService) Lifetime() time.Duration {
	return s.config.Lifetime
}

// Issue creates a signed session token for the given principal
func (s *SessionService) Issue(userID int64, username string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses a session token and returns its claims
func (s *SessionService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrSessionInvalid
	}
	return claims, nil
}
