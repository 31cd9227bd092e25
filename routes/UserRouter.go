package routes

import (
	"github.com/gin-gonic/gin"

	"chirpnest/controllers"
)

func UserRouter(router *gin.Engine, users *controllers.UserController, requireAuth gin.HandlerFunc) {
	r := router.Group("/api/users", requireAuth)
	r.GET("/profile/:username", users.GetProfile)
	r.GET("/suggested", users.GetSuggested)
	r.POST("/follow/:id", users.FollowToggle)
	r.POST("/update", users.Update)
}
