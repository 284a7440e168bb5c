package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"ordering_system/internal/session" // Session table

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionAuthMiddleware validates the bearer session token against the
// in-memory table and stores the token and username in the context
func SessionAuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ") // Extract the opaque token
		username, ok := sessions.Resolve(token)            // Look it up in the session table
		if !ok {
			// Unknown or expired token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.Set("token", token)       // Store token in context
		c.Set("username", username) // Store username in context
		c.Next()                    // Proceed to the next handler
	}
}
