package helper

import (
	"github.com/gin-gonic/gin"

	"chirpnest/models"
)

const ContextUserKey = "user"

// CurrentUser returns the authenticated user placed on the context by the
// auth middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
