package routes

import (
	"github.com/gin-gonic/gin"

	"chirpnest/controllers"
)

func NotificationRouter(router *gin.Engine, notifications *controllers.NotificationController, requireAuth gin.HandlerFunc) {
	r := router.Group("/api/notifications", requireAuth)
	r.GET("", notifications.List)
	r.DELETE("", notifications.DeleteAll)
	r.DELETE("/:id", notifications.DeleteOne)
}
