package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"staticmaps/internal/config"
	handlers "staticmaps/internal/handlers/shared"
	"staticmaps/internal/middleware"
	"staticmaps/internal/repositories/mongodb"
	"staticmaps/internal/services"
	"staticmaps/internal/utils"
	"staticmaps/pkg/cache"
	"staticmaps/pkg/database"
	"staticmaps/pkg/logger"
	"staticmaps/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: cfg.Log.TimeFormat,
		Caller:     cfg.Log.Caller,
		Colors:     config.IsDevelopment(),
		AppName:    cfg.App.Name,
		Version:    cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// MongoDB holds presets
	mongoDB, err := database.NewMongoDB(ctx, &database.DatabaseConfig{
		URI:                    cfg.Database.URI,
		Database:               cfg.Database.Database,
		AppName:                cfg.App.Name,
		MaxPoolSize:            uint64(cfg.Database.MaxPoolSize),
		MinPoolSize:            uint64(cfg.Database.MinPoolSize),
		ConnectTimeout:         cfg.Database.ConnectTimeout,
		SocketTimeout:          cfg.Database.SocketTimeout,
		ServerSelectionTimeout: cfg.Database.ServerSelectionTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Close(closeCtx); err != nil {
			appLogger.WithError(err).Warn("MongoDB disconnect failed")
		}
	}()

	if cfg.Database.MigrateOnStart {
		if err := database.NewMigrator(mongoDB.Database, appLogger).Up(ctx); err != nil {
			appLogger.WithError(err).Fatal("Failed to run migrations")
		}
	}

	checks := map[string]handlers.Pinger{"mongodb": mongoDB}

	// Redis is optional; presets are read straight from MongoDB without it
	var presetCache services.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, &cache.RedisConfig{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			KeyPrefix:    cfg.Redis.KeyPrefix,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, running without preset cache")
		} else {
			defer redisCache.Close()
			presetCache = redisCache
			checks["redis"] = redisCache
		}
	}

	presetRepo := mongodb.NewMapPresetRepository(mongoDB.Database)
	staticMapService := services.NewStaticMapService(cfg.Maps, presetCache, cfg.Redis.PresetTTL, presetRepo, appLogger)

	// Initialize handlers
	staticMapHandler := handlers.NewStaticMapHandler(staticMapService)
	healthHandler := handlers.NewHealthHandler(cfg.App.Version, checks)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		appLogger.WithError(err).Fatal("Invalid trusted proxies")
	}

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupStaticMapRoutes(v1, staticMapHandler, cfg.Security.JWTSecret)
	}

	// Health check
	router.GET("/health", healthHandler.Health)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Starting %s %s on %s", utils.AppName, cfg.App.Version, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Graceful shutdown failed")
	}
}
