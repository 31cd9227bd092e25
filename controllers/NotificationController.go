package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/services"
)

type NotificationController struct {
	notifications *services.NotificationService
	log           *logrus.Logger
}

func NewNotificationController(notifications *services.NotificationService, log *logrus.Logger) *NotificationController {
	return &NotificationController{notifications: notifications, log: log}
}

// List returns the inbox and marks everything in it as read.
func (nc *NotificationController) List(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	notifications, err := nc.notifications.ListAndMarkRead(ctx, actor)
	if err != nil {
		respondError(c, nc.log, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (nc *NotificationController) DeleteAll(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := nc.notifications.DeleteAll(ctx, actor); err != nil {
		respondError(c, nc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications deleted successfully"})
}

func (nc *NotificationController) DeleteOne(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	notificationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := nc.notifications.DeleteOne(ctx, actor, notificationID); err != nil {
		respondError(c, nc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
