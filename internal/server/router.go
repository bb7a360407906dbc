package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/wearloop/wearloop-backend/internal/handlers"
	"github.com/wearloop/wearloop-backend/internal/middleware"
	"github.com/wearloop/wearloop-backend/internal/observability"
)

type RouterConfig struct {
	ServiceName           string
	AllowedOrigins        []string
	Metrics               *observability.Metrics
	AuthMiddleware        *middleware.AuthMiddleware
	AuthHandler           *handlers.AuthHandler
	UserHandler           *handlers.UserHandler
	ProductHandler        *handlers.ProductHandler
	InteractionHandler    *handlers.InteractionHandler
	RecommendationHandler *handlers.RecommendationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "wearloop-backend"
	}
	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.Metrics(cfg.Metrics))

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}
	api := router.Group("/api")
	{
		api.POST("/user/register", cfg.AuthHandler.Register)
		api.POST("/user/login", cfg.AuthHandler.Login)
		api.GET("/products", cfg.ProductHandler.List)
		api.GET("/products/:id", cfg.ProductHandler.Get)
	}

	// Protected
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.POST("/interactions", cfg.InteractionHandler.Track)
	protected.GET("/recommendations", cfg.RecommendationHandler.GetRecommendations)

	return router
}
