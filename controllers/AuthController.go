package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"chirpnest/config"
	"chirpnest/helper"
	"chirpnest/models"
	"chirpnest/services"
)

type AuthController struct {
	auth   *services.AuthService
	tokens *helper.TokenManager
	cookie config.AuthProperties
	log    *logrus.Logger
}

func NewAuthController(auth *services.AuthService, tokens *helper.TokenManager, cookie config.AuthProperties, log *logrus.Logger) *AuthController {
	return &AuthController{auth: auth, tokens: tokens, cookie: cookie, log: log}
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var request services.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ac.auth.Signup(ctx, request)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	if !ac.setTokenCookie(c, user) {
		return
	}
	c.JSON(http.StatusCreated, user.Public())
}

func (ac *AuthController) Login(c *gin.Context) {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ac.auth.Login(ctx, request.Username, request.Password)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	if !ac.setTokenCookie(c, user) {
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// Logout clears the session cookie. Idempotent.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.cookie.CookieName, "", -1, "/", "", ac.cookie.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Check returns the authenticated user's public projection.
func (ac *AuthController) Check(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

func (ac *AuthController) setTokenCookie(c *gin.Context, user models.User) bool {
	token, err := ac.tokens.Generate(user.ID)
	if err != nil {
		respondError(c, ac.log, err)
		return false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.cookie.CookieName, token, int(ac.tokens.TTL().Seconds()), "/", "", ac.cookie.CookieSecure, true)
	return true
}
