package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/quickmart/loyalty-backend/internal/config"
	"github.com/quickmart/loyalty-backend/internal/utils"
)

// JWTAuthMiddleware creates a gin middleware for JWT authentication.
// On success the subject id and role claims are set in the context for
// downstream handlers.
func JWTAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	if cfg.JWT.Secret == "" {
		log.Fatal("[FATAL] JWTAuthMiddleware: JWT secret is not configured")
	}

	return func(c *gin.Context) {
		const bearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		if !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer "})
			return
		}

		tokenString := authHeader[len(bearerSchema):]

		claims, err := utils.ValidateJWT(tokenString, cfg)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set("subjectID", claims["sub"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated token carries
// the given role. Must run after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got, _ := c.Get("role"); got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
