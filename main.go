package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"chirpnest/config"
	"chirpnest/controllers"
	"chirpnest/database"
	"chirpnest/helper"
	"chirpnest/middlewares"
	"chirpnest/routes"
	"chirpnest/services"
	"chirpnest/storage"
	"chirpnest/store"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	properties, err := config.ReadProperties()
	if err != nil {
		logrus.Fatal(err)
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(properties.LogLevel); err == nil {
		log.SetLevel(level)
	}

	client, err := database.Connect(properties.Mongo.URI, properties.Mongo.Timeout)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), properties.Mongo.Timeout)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()
	log.Info("connected to MongoDB")

	images, err := storage.NewMinioImageStore(properties.Images)
	if err != nil {
		log.WithError(err).Fatal("could not create image store client")
	}

	userStore := store.NewMongoUserStore(database.OpenCollection(client, properties.Mongo.Database, "users"))
	postStore := store.NewMongoPostStore(database.OpenCollection(client, properties.Mongo.Database, "posts"))
	notificationStore := store.NewMongoNotificationStore(database.OpenCollection(client, properties.Mongo.Database, "notifications"))

	tokens := helper.NewTokenManager(properties.Auth.Secret, properties.Auth.TokenTTL)

	authService := services.NewAuthService(userStore)
	userService := services.NewUserService(userStore, images, log)
	postService := services.NewPostService(postStore, userStore, notificationStore, images, log)
	notificationService := services.NewNotificationService(notificationStore, userStore)

	authController := controllers.NewAuthController(authService, tokens, properties.Auth, log)
	userController := controllers.NewUserController(userService, log)
	postController := controllers.NewPostController(postService, log)
	notificationController := controllers.NewNotificationController(notificationService, log)

	requireAuth := middlewares.RequireAuth(tokens, userStore, properties.Auth.CookieName)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{properties.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.AuthRouter(router, authController, requireAuth)
	routes.UserRouter(router, userController, requireAuth)
	routes.PostRouter(router, postController, requireAuth)
	routes.NotificationRouter(router, notificationController, requireAuth)

	// serve the SPA bundle for everything outside /api, falling back to
	// index.html for client-side routes
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		file := filepath.Join(properties.StaticDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(properties.StaticDir, "index.html"))
	})

	log.WithField("port", properties.Port).Info("starting server")
	if err := router.Run(":" + properties.Port); err != nil {
		log.Fatal(err)
	}
}
