package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lansen/driveadmin/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestSessions() *auth.SessionService {
	return auth.NewSessionService(auth.SessionConfig{
		SecretKey: "test-secret",
		Lifetime:  time.Hour,
		Issuer:    "driveadmin-test",
	})
}

func newGuardedRouter(sessions *auth.SessionService) *gin.Engine {
	mw := NewAuthMiddleware(sessions)
	router := gin.New()
	router.GET("/api/v1/users/:id", mw.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetInt64(ContextUserID)})
	})
	return router
}

func TestAdminRequiredMissingCookie(t *testing.T) {
	router := newGuardedRouter(newTestSessions())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization failed")
	assert.Contains(t, w.Body.String(), "1005")
}

func TestAdminRequiredInvalidToken(t *testing.T) {
	router := newGuardedRouter(newTestSessions())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredExpiredToken(t *testing.T) {
	expired := auth.NewSessionService(auth.SessionConfig{
		SecretKey: "test-secret",
		Lifetime:  -time.Minute,
		Issuer:    "driveadmin-test",
	})
	token, err := expired.Issue(1, "root", true)
	require.NoError(t, err)

	router := newGuardedRouter(newTestSessions())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredNonAdmin(t *testing.T) {
	sessions := newTestSessions()
	token, err := sessions.Issue(7, "student", false)
	require.NoError(t, err)

	router := newGuardedRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "1004")
}

func TestAdminRequiredValidSession(t *testing.T) {
	sessions := newTestSessions()
	token, err := sessions.Issue(42, "root", true)
	require.NoError(t, err)

	router := newGuardedRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestBrowserRequestsRedirectToLogin(t *testing.T) {
	mw := NewAuthMiddleware(newTestSessions())
	router := gin.New()
	router.GET("/admin/dashboard", mw.AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}
