package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"chirpnest/apperror"
	"chirpnest/helper"
	"chirpnest/models"
)

const requestTimeout = 10 * time.Second

// respondError maps a domain error to its HTTP status. Internal errors are
// logged with their cause and answered with a generic message only.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// requestContext bounds every handler's store and image-host calls.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// mustCurrentUser fetches the authenticated user set by RequireAuth. The
// middleware guarantees it is present on protected routes.
func mustCurrentUser(c *gin.Context) (models.User, bool) {
	user, ok := helper.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return user, ok
}
