package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/pkg/helpers"
	"github.com/devconnect/devconnect-api/pkg/response"
)

// CtxUserIDKey is the gin context key carrying the authenticated user ID.
const CtxUserIDKey = "userID"

// Auth reads the Authorization header, verifies the bearer token, and
// injects the user ID into the request context. It does not re-check that
// the user still exists in the store.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortMessage(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
