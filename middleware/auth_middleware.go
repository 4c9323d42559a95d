package middleware

import (
	"net/http"
	"strings"

	"github.com/archidesk/access"
	"github.com/archidesk/models"
	"github.com/archidesk/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller identity from the request's bearer
// token (or the access_token cookie) and stores it on the context.
// Inactive accounts are rejected even when their token is still valid.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c, "Not authorized, no token provided")
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		user, err := authService.GetUser(claims.UserID)
		if err != nil {
			abortUnauthorized(c, "User not found")
			return
		}
		if !user.IsActive {
			abortUnauthorized(c, "User account is inactive")
			return
		}

		c.Set("userId", user.ID)
		c.Set("email", user.Email)
		c.Set("role", string(user.Role))
		c.Next()
	}
}

// CallerFrom rebuilds the caller identity stored by AuthMiddleware.
func CallerFrom(c *gin.Context) (access.Caller, bool) {
	userID, ok := c.Get("userId")
	if !ok {
		return access.Caller{}, false
	}
	role, ok := c.Get("role")
	if !ok {
		return access.Caller{}, false
	}
	return access.Caller{
		ID:   userID.(string),
		Role: models.Role(role.(string)),
	}, true
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
	})
	c.Abort()
}
