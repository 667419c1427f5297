package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	userRepo "mentorhub/database/repository/user"
	"mentorhub/utils"
)

const authCacheTTL = time.Hour

// JWTAuthMiddleware validates the bearer token signature and checks its hash
// against the active token hash, first in the auth cache and then in the
// database. On success it sets "userID" and "role" in the context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil
		if !cacheEnabled {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
		}

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
				c.Set("userID", userID)
				c.Set("role", role)
				c.Next()
				return
			}
		}

		// Cache miss: verify against the stored hash and backfill the cache.
		userRec, err := users.GetByID(ctx, userID)
		if err != nil || userRec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}
		if userRec.TokenHash == "" || userRec.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}
		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, authCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
