package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/profast/parcel-server/internal/models"
	"github.com/profast/parcel-server/internal/services"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextEmailKey   = "userEmail"
	ContextSubjectKey = "userSubject"
)

func AuthMiddleware(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// First try to get the token from the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		// If not found in the header, try the query parameter (for WebSocket)
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			c.Abort()
			return
		}

		c.Set(ContextEmailKey, identity.Email)
		c.Set(ContextSubjectKey, identity.Subject)
		c.Next()
	}
}

// RequireAdmin gates admin-only endpoints. AuthMiddleware must run first.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			c.Abort()
			return
		}
		c.Next()
	}
}
