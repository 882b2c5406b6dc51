package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/auth"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/JonnyWalker81/daybook/backend/internal/middleware"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// AuthHandler handles login, logout and the current session user
type AuthHandler struct {
	authService  service.AuthService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. The session token is written
// to cookieName, marked Secure when secureCookie is set.
func NewAuthHandler(authService service.AuthService, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	authResp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "user", "")
		return
	}

	h.setSessionCookie(c, authResp.AccessToken, authResp.ExpiresIn)
	logger.Ctx(c.Request.Context()).Info("user logged in", logger.String("user_id", authResp.User.ID))

	c.JSON(http.StatusOK, authResp)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logging
// out only clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user := h.authService.Me(c.Request.Context(), auth.Identity{
		UserID: userID,
		Email:  c.GetString(middleware.UserEmailKey),
	})
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.secureCookie, true)
}
