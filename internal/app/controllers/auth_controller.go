package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/app/services"
	"github.com/lansen/driveadmin/internal/middleware"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/auth"
)

// AuthController handles the admin console sign-in flow. The login form
// posts form fields; API clients may send JSON instead. Both end up with
// the session token in an HttpOnly cookie.
type AuthController struct {
	authService  services.AuthService
	authMw       *middleware.AuthMiddleware
	cookieSecure bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, authMw *middleware.AuthMiddleware, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		authMw:       authMw,
		cookieSecure: cookieSecure,
	}
}

func wantsJSON(ctx *gin.Context) bool {
	if ctx.ContentType() == "application/json" {
		return true
	}
	return ctx.GetHeader("Accept") == "application/json"
}

// ShowLogin renders the sign-in page, greeting an already signed-in admin
func (c *AuthController) ShowLogin(ctx *gin.Context) {
	data := gin.H{}
	if claims := c.authMw.CurrentSession(ctx); claims != nil {
		data["username"] = claims.Username
	}
	ctx.HTML(http.StatusOK, "login.html", data)
}

// Login verifies the credentials and establishes a session
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		if wantsJSON(ctx) {
			respondInvalid(ctx, err)
			return
		}
		middleware.BadRequestPage(ctx)
		return
	}

	user, token, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if wantsJSON(ctx) {
			middleware.HandleAPIError(ctx, err)
			return
		}
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"error": "wrong username or password",
			})
			return
		}
		ctx.HTML(http.StatusInternalServerError, "500.html", nil)
		return
	}

	lifetime := int(c.authService.SessionService().Lifetime().Seconds())
	ctx.SetCookie(auth.CookieName, token, lifetime, "/", "", c.cookieSecure, true)

	if wantsJSON(ctx) {
		respond(ctx, dto.Ok(dto.LoginResponse{
			UserID:   user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		}))
		return
	}
	ctx.Redirect(http.StatusFound, middleware.LoginPath)
}

// Logout clears the session cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(auth.CookieName, "", -1, "/", "", c.cookieSecure, true)

	if wantsJSON(ctx) {
		respond(ctx, dto.Ok(nil))
		return
	}
	ctx.Redirect(http.StatusFound, middleware.LoginPath)
}
