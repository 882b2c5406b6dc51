package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/logger"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "reuses caller id", incoming: "req-123", wantSame: true},
		{name: "generates when absent"},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID())
			var ginID, ctxID string
			r.GET("/x", func(c *gin.Context) {
				ginID = c.GetString("request_id")
				ctxID = logger.RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			header := w.Header().Get(RequestIDHeader)
			if header == "" || header != ginID || header != ctxID {
				t.Fatalf("header = %q, gin = %q, ctx = %q", header, ginID, ctxID)
			}
			if tt.wantSame != (header == tt.incoming) {
				t.Errorf("request id = %q, incoming %q", header, tt.incoming)
			}
		})
	}
}
