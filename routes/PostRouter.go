package routes

import (
	"github.com/gin-gonic/gin"

	"chirpnest/controllers"
)

func PostRouter(router *gin.Engine, posts *controllers.PostController, requireAuth gin.HandlerFunc) {
	r := router.Group("/api/posts", requireAuth)
	r.GET("/all", posts.GetAll)
	r.GET("/following", posts.GetFollowing)
	r.GET("/user/:username", posts.GetByUser)
	r.GET("/likes/:id", posts.GetLiked)
	r.POST("/create", posts.Create)
	r.DELETE("/:id", posts.Delete)
	r.POST("/like/:id", posts.LikeUnlike)
	r.POST("/comment/:id", posts.Comment)
	r.DELETE("/comments/:postId/:commentId", posts.DeleteComment)
}
