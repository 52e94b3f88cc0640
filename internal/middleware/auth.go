package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// OwnerIDKey is the gin context key holding the authenticated caller's
// opaque owner id.
const OwnerIDKey = "owner_id"

// TokenValidator verifies a bearer token and yields the owner identity it
// carries.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// AuthMiddleware validates the Authorization header and stores the owner id
// in the request context. The identity is trusted unconditionally once the
// token verifies.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		ownerID, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(OwnerIDKey, ownerID)
		c.Next()
	}
}
