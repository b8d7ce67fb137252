package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/session"
	"bakery_frontdesk/pkg/utils"
)

const (
	ctxUserKey  = "currentUser"
	ctxTokenKey = "token"
)

// RequireAuth loads the session identity and rejects requests without one.
// Expired upstream tokens evict the session so the browser is forced back to
// the login screen rather than collecting 401s from every proxied call.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, token, ok := session.Get(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please log in."})
			c.Abort()
			return
		}

		if utils.TokenExpired(token) {
			_ = session.Clear(c)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Session expired. Please log in again."})
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Must run after
// RequireAuth.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Insufficient permissions."})
		c.Abort()
	}
}

// CurrentUser returns the authenticated identity set by RequireAuth.
func CurrentUser(c *gin.Context) *session.CurrentUser {
	if v, ok := c.Get(ctxUserKey); ok {
		if user, ok := v.(*session.CurrentUser); ok {
			return user
		}
	}
	return nil
}

// Token returns the upstream bearer token set by RequireAuth.
func Token(c *gin.Context) string {
	if v, ok := c.Get(ctxTokenKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
