package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
	"github.com/ilyahahaha/vneshtata-new/internal/security"
)

const sessionUserKey = "session_user"

// Session decodes the session cookie once per request and stashes the
// identity in the request context. A missing or invalid cookie yields
// the empty session, never an error; gating happens in RequireAuth.
func Session(store *security.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionUserKey, store.Read(c))
		c.Next()
	}
}

// RequireAuth rejects the call before any data access when the session
// identity is not logged in.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsLoggedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "You are not authorized",
				"result":  gin.H{},
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity derived by Session; the empty
// session when the middleware never ran.
func CurrentUser(c *gin.Context) models.SessionUser {
	userVal, exists := c.Get(sessionUserKey)
	if !exists {
		return models.EmptySession
	}
	user, ok := userVal.(models.SessionUser)
	if !ok {
		return models.EmptySession
	}
	return user
}
