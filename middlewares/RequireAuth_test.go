package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/helper"
	"chirpnest/models"
	"chirpnest/store"
)

// fakeUsers serves exactly one user; every other lookup misses.
type fakeUsers struct {
	store.UserStore
	user models.User
}

func (f fakeUsers) GetByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	if id == f.user.ID {
		return f.user, nil
	}
	return models.User{}, store.ErrNotFound
}

func authRouter(tokens *helper.TokenManager, users store.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(tokens, users, "jwt"), func(c *gin.Context) {
		user, _ := helper.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	tokens := helper.NewTokenManager("test-secret", time.Hour)
	user := models.User{ID: primitive.NewObjectID(), Username: "ada"}
	router := authRouter(tokens, fakeUsers{user: user})

	t.Run("valid token", func(t *testing.T) {
		token, err := tokens.Generate(user.ID)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"username":"ada"}`, recorder.Body.String())
	})

	t.Run("missing cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := helper.NewTokenManager("test-secret", -time.Minute)
		token, err := expired.Generate(user.ID)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token for deleted user", func(t *testing.T) {
		token, err := tokens.Generate(primitive.NewObjectID())
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
