package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions
	"strings"  // String manipulation

	"ordering_system/internal/domain"  // Domain errors
	"ordering_system/internal/session" // Session manager
	"ordering_system/internal/store"   // Credential store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Request and Response structs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Address  string `json:"address" binding:"required"`  // Delivery address must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // Opaque session token
}

// isValidUsername checks if the username contains only alphabetic characters
func isValidUsername(username string) bool {
	matched, _ := regexp.MatchString(`^[A-Za-z]+$`, username) // Regex to match alphabetic characters only
	return matched                                            // Return whether it matched
}

// isValidPassword checks if the password length is between 8 and 15 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 15 // Return true if length is valid
}

// RegisterHandler creates a new account in the credential store
func RegisterHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate username and password
		if !isValidUsername(req.Username) {
			// If username is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be alphabetic only"})
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			// If password is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-15 characters"})
			return
		}
		// Register with lowercase username to ensure uniqueness
		err := st.Register(strings.ToLower(req.Username), req.Password, req.Email, req.Address)
		if errors.Is(err, domain.ErrDuplicateUser) {
			// Duplicate username, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		if err != nil {
			// Hashing or persistence failed
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
	}
}

// LoginHandler authenticates a user and returns a session token
func LoginHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Check credentials and mint a session
		token, err := sessions.Login(strings.ToLower(req.Username), req.Password)
		if errors.Is(err, domain.ErrTooManyAttempts) {
			// Throttled, return too many requests
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts"})
			return
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// One generic message for unknown user and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		if err != nil {
			// Token minting failed
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// LogoutHandler removes the caller's session; idempotent
func LogoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, exists := c.Get("token") // Get token from context
		if !exists {
			// Middleware did not run; treat as unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessions.Logout(token.(string)) // Remove the session immediately
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
