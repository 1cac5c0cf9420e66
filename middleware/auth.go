package middleware

import (
	"net/http"
	"strings"

	"salonflow/utils"

	"github.com/gin-gonic/gin"
)

// SalonIDKey is the gin context key carrying the authenticated salon id.
const SalonIDKey = "salonID"

// JWTAuthSalonMiddleware guards dashboard routes. The token subject is the
// salon id the dashboard session belongs to.
func JWTAuthSalonMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		salonID, err := utils.ExtractSalonIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(SalonIDKey, salonID)
		c.Next()
	}
}
