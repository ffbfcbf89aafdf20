package security

import (
	"net/http"
	"strings"

	errs "WProject/tools/errs"

	"github.com/gin-gonic/gin"
)

// TokenGate gates a route behind the process-wide shared secret.
// An empty required token means open mode: everything is permitted.
//
// The credential is read from the `token` query parameter first (browser
// WebSocket clients cannot set headers), then from `Authorization: Bearer`.
// Comparison is a plain exact match, same as the original gate.
func TokenGate(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if required == "" {
			c.Next()
			return
		}

		token := strings.TrimSpace(c.Query("token"))
		if token == "" {
			if authz := strings.TrimSpace(c.GetHeader("Authorization")); authz != "" {
				if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					token = strings.TrimSpace(authz[len("bearer "):])
				}
			}
		}

		if token != required {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrInvalidToken)
			return
		}

		c.Next()
	}
}
