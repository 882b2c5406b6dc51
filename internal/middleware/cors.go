package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin matches exactly one subdomain label under suffix, e.g.
// https://*.example.com matches https://app.example.com only.
type wildcardOrigin struct {
	scheme string
	suffix string
}

// parseWildcardOrigin returns nil unless pattern has the form
// scheme://*.domain.tld with a single wildcard as the leftmost label.
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	idx := strings.Index(pattern, "://")
	if idx <= 0 {
		return nil
	}
	scheme := pattern[:idx+3]
	host := pattern[idx+3:]

	if !strings.HasPrefix(host, "*.") || strings.Count(pattern, "*") != 1 {
		return nil
	}
	suffix := host[1:]
	// at least domain.tld after the wildcard
	if strings.Count(suffix, ".") < 2 {
		return nil
	}
	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) || !strings.HasSuffix(origin, w.suffix) {
		return false
	}
	label := origin[len(w.scheme) : len(origin)-len(w.suffix)]
	return label != "" && !strings.ContainsAny(label, "./:")
}

// CORS handles cross-origin requests. With no configured origins every
// origin is allowed without credentials. Entries may be exact origins or
// single-label wildcards such as https://*.example.com.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	exact := make(map[string]bool)
	var wildcards []*wildcardOrigin
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if w := parseWildcardOrigin(origin); w != nil {
			wildcards = append(wildcards, w)
			continue
		}
		exact[origin] = true
	}
	allowAll := len(exact) == 0 && len(wildcards) == 0

	isAllowed := func(origin string) bool {
		if exact[origin] {
			return true
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" && isAllowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		} else if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Idempotency-Key, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
