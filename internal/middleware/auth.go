package middleware

import (
	"strings"

	"github.com/JonnyWalker81/daybook/backend/internal/apierror"
	"github.com/JonnyWalker81/daybook/backend/internal/auth"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Context keys set by Auth
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// Auth verifies the session token from the session cookie or, failing
// that, an "Authorization: Bearer" header.
func Auth(verifier auth.TokenVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Ctx(c.Request.Context())

		token := sessionToken(c, cookieName)
		if token == "" {
			log.Debug("authentication failed: no session token")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Warn("authentication failed: token verification error", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		c.Set(UserIDKey, identity.UserID)
		c.Set(UserEmailKey, identity.Email)

		ctx := logger.WithUserID(c.Request.Context(), identity.UserID)
		c.Request = c.Request.WithContext(ctx)

		log.Debug("authentication successful", logger.String("user_id", identity.UserID))

		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) string {
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			return cookie
		}
	}

	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
