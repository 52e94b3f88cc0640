package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsmith/backend/internal/middleware"
)

// currentOwner pulls the authenticated owner id out of the request context.
// It aborts with 401 when absent, which only happens if a route was wired
// without the auth middleware.
func currentOwner(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.OwnerIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return "", false
	}
	ownerID, ok := value.(string)
	if !ok || ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return "", false
	}
	return ownerID, true
}
