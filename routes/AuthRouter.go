package routes

import (
	"github.com/gin-gonic/gin"

	"chirpnest/controllers"
)

func AuthRouter(router *gin.Engine, auth *controllers.AuthController, requireAuth gin.HandlerFunc) {
	r := router.Group("/api/auth")
	r.POST("/signup", auth.SignUp)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.Logout)
	r.GET("/check", requireAuth, auth.Check)
}
