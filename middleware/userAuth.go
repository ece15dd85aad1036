package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"stylebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthUserMiddleware authenticates requests with a Bearer token. The
// sha256 hash of the token is cached in Redis keyed by user ID; a cache
// hit skips signature re-validation on hot paths. Sets "userID" and
// "role" on the gin context.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, role, err := utils.ExtractIDAndRoleFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
						"error": "Token mismatch",
						"code":  0,
					})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Proceeding without cache.", err)
			} else {
				// Miss: the signature already validated above, prime the cache.
				_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
