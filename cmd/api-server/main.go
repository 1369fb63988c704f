package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"groanzone/database"
	"groanzone/internal/config"
	"groanzone/internal/http-api/handler"
	"groanzone/internal/http-api/middleware"
	"groanzone/internal/http-api/repository"
	"groanzone/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer rdb.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	jokeRepo := repository.NewJokeRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	sessions := service.NewRedisSessionStore(rdb, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, jokeRepo, ratingRepo, sessions)
	jokeService := service.NewJokeService(jokeRepo)
	ratingService := service.NewRatingService(ratingRepo, jokeRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, int(cfg.SessionTTL.Seconds()))
	jokeHandler := handler.NewJokeHandler(jokeService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.Use(middleware.LoginRateLimiter())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	api.GET("/profile", middleware.SessionMiddleware(sessions), authHandler.Profile)

	jokes := api.Group("/jokes")
	jokes.Use(middleware.SessionMiddleware(sessions))
	jokeHandler.RegisterRoutes(jokes)
	ratingHandler.RegisterRoutes(jokes)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
