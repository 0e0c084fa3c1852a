package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/megane-nerdo/skillhubnext/internal/auth"
	"github.com/megane-nerdo/skillhubnext/internal/logger"
	"github.com/megane-nerdo/skillhubnext/internal/models"
)

// AuthMiddleware verifies the bearer token and stores the caller identity
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles restricts a route group to the given roles. A caller with the
// wrong role gets 401, not 403; 403 is reserved for ownership failures.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok || !roleSet[models.UserRole(roleStr)] {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

// GetCaller rebuilds the authenticated caller from the gin context.
func GetCaller(c *gin.Context) (models.Caller, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return models.Caller{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return models.Caller{}, false
	}

	roleVal, _ := c.Get("role")
	roleStr, _ := roleVal.(string)

	return models.Caller{ID: userID, Role: models.UserRole(roleStr)}, true
}
