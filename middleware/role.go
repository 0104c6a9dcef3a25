package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ManagerOnlyMiddleware gates endpoints reserved to the condominium
// staff roles (porteiro, zelador, sindico). Must run after
// ActorAuthMiddleware.
func ManagerOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated actor"})
			return
		}
		if !actor.Role.IsManager() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Manager role required"})
			return
		}
		c.Next()
	}
}
