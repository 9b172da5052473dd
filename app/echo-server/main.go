package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookwise/app/echo-server/router"
	"bookwise/business/catalog"
	"bookwise/business/insights"
	"bookwise/business/recommend"
	"bookwise/internal/middleware"
	psqlRepo "bookwise/internal/repository/postgres"
	"bookwise/internal/repository/rediscache"
	"bookwise/internal/rest"
	"bookwise/pkg/config"
	"bookwise/pkg/database"
	redisdb "bookwise/pkg/database/redis"
	"bookwise/pkg/logger"
	"bookwise/pkg/metrics"
	"bookwise/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Bookwise", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init repo
	bookRepo := psqlRepo.NewBookRepository(db)
	eventRepo := psqlRepo.NewAIEventRepository(db)

	// Optional redis-backed catalog cache, ranking reads the catalog on
	// every request so the listing is the hot path.
	var recoBooks recommend.BookRepository = bookRepo
	var cacheInvalidator catalog.CacheInvalidator
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer func() {
			if err := redisdb.CloseRedisClient(redisClient); err != nil {
				logger.Error("Failed to close redis client", err)
			}
		}()

		cached := rediscache.NewCachedBookRepository(bookRepo, redisClient, time.Duration(cfg.Redis.TTLSec)*time.Second)
		recoBooks = cached
		cacheInvalidator = cached

		logger.Info("Catalog cache enabled", "ttl_seconds", cfg.Redis.TTLSec)
	}

	// Init service
	bookService := catalog.NewBookService(bookRepo, cacheInvalidator)
	recoService := recommend.NewService(recoBooks, eventRepo)
	insightsService := insights.NewService(eventRepo, bookRepo)

	// Init handler
	bookHandler := rest.NewBookHandler(bookService)
	aiHandler := rest.NewAIHandler(recoService, insightsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Prometheus exposition
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupBookRoutes(api, bookHandler, authRequired, adminOnly)
	router.SetupAIRoutes(api, aiHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
