package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	directoryRepo "condoreserve/database/repository/directory"
	"condoreserve/models"
	"condoreserve/utils"
)

// actorContextKey is the gin context key carrying the resolved actor.
const actorContextKey = "actor"

// ActorAuthMiddleware resolves the bearer token to an Actor through the
// directory, with a Redis-backed token cache in front of the lookup.
func ActorAuthMiddleware(directory directoryRepo.ActorDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		// Cache hit: the actor was resolved recently for this token.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				var actor models.Actor
				if jsonErr := json.Unmarshal([]byte(cached), &actor); jsonErr == nil {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set(actorContextKey, actor)
					c.Next()
					return
				}
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to directory lookup.", err)
			}
		}

		// Cache miss: resolve through the directory by token hash.
		actor, err := directory.GetByTokenHash(ctx, computedHash)
		if err != nil || actor == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or actor not found"})
			return
		}

		if authCache != nil {
			if data, jsonErr := json.Marshal(actor); jsonErr == nil {
				_ = authCache.Set(ctx, cacheKey, data, utils.AuthCacheTTL).Err()
			}
		}

		c.Set(actorContextKey, *actor)
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor set by
// ActorAuthMiddleware.
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	val, ok := c.Get(actorContextKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := val.(models.Actor)
	return actor, ok
}

// SetActorForTest injects an actor into the context; test helper for
// handlers exercised without the auth middleware.
func SetActorForTest(c *gin.Context, actor models.Actor) {
	c.Set(actorContextKey, actor)
}
