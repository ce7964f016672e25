package server

import (
	"net/http"
	"strings"
	"time"

	"auction-portal/internal/auctionerrors"
	"auction-portal/internal/identity"
	"auction-portal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware validates the bearer token and attaches the claims to the
// request context. Requests without a valid identity never reach a handler.
func AuthMiddleware(tokens identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "invalid bearer token")
			utils.Warn("AuthMiddleware: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(identity.ContextKey, claims)
		c.Next()
	}
}
