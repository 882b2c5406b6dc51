package middleware

import (
	"bytes"
	"net/http"

	"github.com/JonnyWalker81/daybook/backend/internal/apierror"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader  = "Idempotency-Key"
	IdempotencyReplayed   = "X-Idempotency-Replayed"
	maxIdempotencyKeySize = 255
)

// captureWriter copies the response body while it is written.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a POST or PUT that repeats an
// Idempotency-Key for the same route and user. Only 2xx responses are
// stored. A failing store never blocks the request. It must run after Auth.
func Idempotency(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || (method != http.MethodPost && method != http.MethodPut) {
			c.Next()
			return
		}

		requestID := apierror.GetRequestID(c)
		if len(key) > maxIdempotencyKeySize {
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
				"Idempotency-Key exceeds 255 characters", "The idempotency key is too long."))
			c.Abort()
			return
		}

		userID := c.GetString(UserIDKey)
		if userID == "" {
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		log := logger.Ctx(ctx)
		route := method + " " + c.FullPath()

		existing, err := repo.Get(ctx, key, route, userID)
		if err != nil {
			log.Error("idempotency lookup failed", logger.String("route", route), logger.Err(err))
			c.Next()
			return
		}
		if existing != nil {
			log.Info("replaying idempotent response",
				logger.String("route", route),
				logger.Int("status", existing.StatusCode),
			)
			c.Header(IdempotencyReplayed, "true")
			c.Data(existing.StatusCode, "application/json; charset=utf-8", existing.ResponseBody)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < 200 || status >= 300 {
			return
		}
		if err := repo.Store(ctx, key, route, userID, w.body.Bytes(), status); err != nil {
			log.Warn("failed to store idempotency key", logger.String("route", route), logger.Err(err))
		}
	}
}
