package http

import (
	"strings"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const principalKey = "principal"

// authenticate resolves the bearer token into a principal. With required
// unset a missing header passes through anonymously; a header that is
// present but invalid is always refused.
func (h *Handler) authenticate(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if header == "" || !found || strings.TrimSpace(raw) == "" {
			if required {
				fail(c, domain.ErrUnauthenticated)
				return
			}
			c.Next()
			return
		}

		u, err := h.tokens.Verify(c.Request.Context(), strings.TrimSpace(raw))
		if err != nil {
			fail(c, err)
			return
		}
		c.Set(principalKey, auth.PrincipalOf(u))
		c.Next()
	}
}

// principal returns the caller, or nil for anonymous requests.
func principal(c *gin.Context) *auth.Principal {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("request")
			return
		}
		entry.Info("request")
	}
}
