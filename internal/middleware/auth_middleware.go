package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/pkg/auth"
)

// Context keys set by AdminRequired for downstream handlers
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextIsAdmin  = "isAdmin"
)

// LoginPath is where unauthenticated browser requests are sent
const LoginPath = "/admin/login"

// AuthMiddleware guards routes behind the admin session cookie
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// isAPIRequest tells API clients apart from browsers so failures can be
// answered with an envelope instead of a redirect
func isAPIRequest(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func rejectUnauthenticated(c *gin.Context) {
	if isAPIRequest(c) {
		env := dto.AuthFailed()
		c.AbortWithStatusJSON(env.Status, env)
		return
	}
	c.Redirect(http.StatusFound, LoginPath)
	c.Abort()
}

// AdminRequired validates the session cookie and requires the admin claim.
// Every guarded operation is reachable only through this middleware.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.CookieName)
		if err != nil || tokenString == "" {
			rejectUnauthenticated(c)
			return
		}

		claims, err := m.sessions.Validate(tokenString)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		if !claims.IsAdmin {
			env := dto.Forbidden()
			c.AbortWithStatusJSON(env.Status, env)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// CurrentSession returns the validated claims for the request, if any.
// Handlers that render pages use it to show who is signed in.
func (m *AuthMiddleware) CurrentSession(c *gin.Context) *auth.Claims {
	tokenString, err := c.Cookie(auth.CookieName)
	if err != nil || tokenString == "" {
		return nil
	}
	claims, err := m.sessions.Validate(tokenString)
	if err != nil {
		return nil
	}
	return claims
}
