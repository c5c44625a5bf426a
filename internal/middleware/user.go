package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// RequireUser extracts the authenticated user id from the X-User-ID header
// set by the API gateway and rejects requests without one.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Missing X-User-ID header",
			})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the user id stored by RequireUser
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
