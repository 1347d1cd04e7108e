package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelmate/internal/domain/repository"
)

const contextUserIDKey = "userID"

// AuthMiddleware resolves the Authorization bearer token to a user id and
// stores it on the request context. Requests without a valid token proceed
// anonymously; handlers that need an identity use RequireAuth.
func AuthMiddleware(provider repository.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			userID, err := provider.UserIDFromToken(c.Request.Context(), token)
			if err != nil {
				log.Printf("auth: rejected token: %v", err)
			} else {
				c.Set(contextUserIDKey, userID)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when the request carries no authenticated user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "a valid access token is required",
			})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or "" for anonymous
// requests.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}
