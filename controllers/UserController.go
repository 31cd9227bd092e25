package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/models"
	"chirpnest/services"
)

type UserController struct {
	users *services.UserService
	log   *logrus.Logger
}

func NewUserController(users *services.UserService, log *logrus.Logger) *UserController {
	return &UserController{users: users, log: log}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := uc.users.Profile(ctx, c.Param("username"))
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

func (uc *UserController) GetSuggested(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := uc.users.Suggested(ctx, actor)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}

	suggested := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		suggested = append(suggested, user.Public())
	}
	c.JSON(http.StatusOK, suggested)
}

func (uc *UserController) FollowToggle(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	followed, err := uc.users.FollowToggle(ctx, actor, targetID)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}

	if followed {
		c.JSON(http.StatusOK, gin.H{"message": "User followed successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User unfollowed successfully"})
}

func (uc *UserController) Update(c *gin.Context) {
	actor, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var request services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := uc.users.UpdateProfile(ctx, actor, request)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}
