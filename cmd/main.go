package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wearloop/wearloop-backend/internal/db"
	"github.com/wearloop/wearloop-backend/internal/handlers"
	"github.com/wearloop/wearloop-backend/internal/logger"
	"github.com/wearloop/wearloop-backend/internal/middleware"
	"github.com/wearloop/wearloop-backend/internal/observability"
	"github.com/wearloop/wearloop-backend/internal/repos"
	"github.com/wearloop/wearloop-backend/internal/server"
	"github.com/wearloop/wearloop-backend/internal/services"
	"github.com/wearloop/wearloop-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	recommendationTimeout := utils.GetEnvAsInt("RECOMMENDATION_TIMEOUT_SECONDS", 10, log)
	allowedOrigins := strings.Split(utils.GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000", log), ",")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Observability
	metrics := observability.Init(log)
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "wearloop-backend",
		Environment: utils.GetEnv("DEPLOY_ENV", "development", log),
		Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
	})
	if otelShutdown != nil {
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = otelShutdown(shutdownCtx)
			shutdownCancel()
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()
	metrics.StartPostgresCollector(ctx, log, thePG)
	metrics.StartRedisCollector(ctx, log, utils.GetEnv("REDIS_ADDR", "", log))
	metrics.StartServer(ctx, log, utils.GetEnv("METRICS_ADDR", "", log))

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	productRepo := repos.NewProductRepo(thePG, log)
	interactionRepo := repos.NewInteractionRepo(thePG, log)

	// Services
	log.Info("Setting up services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	productService := services.NewProductService(thePG, log, productRepo)
	interactionService := services.NewInteractionService(thePG, log, interactionRepo, metrics)
	recommendationService := services.NewRecommendationService(
		thePG,
		log,
		userRepo,
		productRepo,
		interactionRepo,
		metrics,
		time.Duration(recommendationTimeout)*time.Second,
	)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(log, productService)
	interactionHandler := handlers.NewInteractionHandler(log, interactionService)
	recommendationHandler := handlers.NewRecommendationHandler(log, recommendationService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		ServiceName:           "wearloop-backend",
		AllowedOrigins:        allowedOrigins,
		Metrics:               metrics,
		AuthMiddleware:        authMiddleware,
		AuthHandler:           authHandler,
		UserHandler:           userHandler,
		ProductHandler:        productHandler,
		InteractionHandler:    interactionHandler,
		RecommendationHandler: recommendationHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
