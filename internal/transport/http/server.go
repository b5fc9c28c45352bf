package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appsvc "tsg-api/internal/app"
	"tsg-api/internal/bootstrap"
	"tsg-api/internal/cache"
	"tsg-api/internal/i18n"
	"tsg-api/internal/platform/rabbitmq"
	"tsg-api/internal/repository"
	"tsg-api/internal/transport/http/handler"
	"tsg-api/internal/transport/http/middleware"
	"tsg-api/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.HandleMethodNotAllowed = true

	catalog := i18n.New(app.Config.App.Locale)
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, catalog.T("not_found"))
	})
	router.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, catalog.T("method_not_allowed"))
	})

	healthHandler := handler.NewHealthHandler(app)
	router.StaticFile("/", "web/index.html")
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	revocations := cache.NewRevocationCache(app.Redis)
	events := rabbitmq.NewAuthEventPublisher(app.MQConn, app.Config.RabbitMQ.AuthEventQueue)

	tokenService := appsvc.NewTokenService(
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.TokenTTLSeconds)*time.Second,
		revocations,
	)
	authService := appsvc.NewAuthService(userRepo, tokenService, events, app.Config.Auth.PasswordMinLen)
	userService := appsvc.NewUserService(userRepo)
	postService := appsvc.NewPostService(postRepo)

	authHandler := handler.NewAuthHandler(authService, catalog)
	userHandler := handler.NewUserHandler(userService, catalog)
	postHandler := handler.NewPostHandler(postService, catalog)

	requireAuth := middleware.Auth(tokenService, catalog)

	api := router.Group("/api")
	api.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TEST"})
	})

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", requireAuth, authHandler.Logout)

	users := api.Group("/users", requireAuth)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Show)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Destroy)

	posts := api.Group("/posts", requireAuth)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Show)
	posts.POST("", postHandler.Store)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Destroy)

	return router
}
