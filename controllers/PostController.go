package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/services"
)

type PostController struct {
	posts *services.PostService
	log   *logrus.Logger
}

func NewPostController(posts *services.PostService, log *logrus.Logger) *PostController {
	return &PostController{posts: posts, log: log}
}

func (pc *PostController) Create(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var request struct {
		Text string `json:"text"`
		Img  string `json:"img"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := pc.posts.Create(ctx, actor, request.Text, request.Img)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) Delete(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := pc.posts.Delete(ctx, actor, postID); err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (pc *PostController) LikeUnlike(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	likes, err := pc.posts.LikeUnlike(ctx, actor, postID)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (pc *PostController) Comment(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var request struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := pc.posts.Comment(ctx, actor, postID, request.Text)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeleteComment(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}
	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := pc.posts.DeleteComment(ctx, actor, postID, commentID)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) GetAll(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := pc.posts.All(ctx)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetFollowing(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := pc.posts.FollowingFeed(ctx, actor)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetByUser(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := pc.posts.UserPosts(ctx, c.Param("username"))
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetLiked(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := pc.posts.LikedPosts(ctx, userID)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
