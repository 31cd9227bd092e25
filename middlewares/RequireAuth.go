package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chirpnest/helper"
	"chirpnest/store"
)

const lookupTimeout = 10 * time.Second

// RequireAuth resolves the session cookie to a user and puts it on the
// request context. Requests without a valid, unexpired token never reach
// the protected handlers.
func RequireAuth(tokens *helper.TokenManager, users store.UserStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// check that the attached user still exists
		ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
		defer cancel()
		user, err := users.GetByID(ctx, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(helper.ContextUserKey, user)
		c.Next()
	}
}
