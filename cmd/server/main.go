package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/cache"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/config"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/database"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/errors"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/monitoring"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/pipeline"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/ratelimit"
)

const version = "2.0.0"

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	// Initialize database and profile store
	db, err := database.NewDB(cfg.DataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := database.NewStore(db)

	r := gin.New()

	// Initialize monitoring system
	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	r.Use(monitoring.MonitoringMiddleware(appMetrics, appLogger))

	// Add error handling middleware
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	// Rate limiting: Redis-backed sliding window with in-memory fallback
	redisClient, err := ratelimit.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		slog.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}
	defer redisClient.Close()

	limiterConfig := ratelimit.DefaultConfig()
	limiterConfig.IPLimitPerMin = cfg.RateLimitPerMin
	limiter := ratelimit.NewRateLimiter(redisClient, limiterConfig, appMetrics)
	r.Use(limiter.IPRateLimitMiddleware())

	// Cache profile submissions by dump hash
	appCache := cache.NewCache(cfg.CacheTTL)
	r.Use(appCache.Middleware(appMetrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
			"metrics":   appMetrics.GetStats(),
			"database":  db.GetPoolStats(),
			"ratelimit": limiter.GetStats(),
		})
	})

	// POST /profiles runs the full pipeline over the raw dump in the request
	// body and persists the three artifacts. Pipeline runs are the expensive
	// path, so they carry a tighter endpoint limit on top of the IP limit.
	r.POST("/profiles", limiter.EndpointRateLimitMiddleware("profiles", 10), func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Error(errors.NewValidationError("Failed to read request body"))
			return
		}

		dump := string(body)
		if strings.TrimSpace(dump) == "" {
			c.Error(errors.NewValidationError("Request body must contain a repository dump"))
			return
		}

		start := time.Now()
		result := pipeline.Run(dump)
		duration := time.Since(start)

		appMetrics.RecordPipelineRun(len(result.Filtered.Repositories))
		appLogger.PipelineLogger(len(dump), len(result.Filtered.Repositories), result.Filtered.TotalCommits, duration, false)

		dumpHash := cache.GenerateKey(dump)
		id, err := store.SaveRun(dumpHash, result)
		if err != nil {
			c.Error(errors.NewIOError("Failed to persist profile run", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":            id,
			"repositories":  len(result.Filtered.Repositories),
			"total_commits": result.Filtered.TotalCommits,
			"predictive":    result.Predictive,
		})
	})

	r.GET("/profiles", func(c *gin.Context) {
		runs, err := store.ListRuns(50)
		if err != nil {
			c.Error(errors.NewIOError("Failed to list profile runs", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"runs": runs})
	})

	r.GET("/profiles/:id/filtered", artifactHandler(store, func(run *database.ProfileRun) string {
		return run.FilteredJSON
	}))
	r.GET("/profiles/:id/translated", artifactHandler(store, func(run *database.ProfileRun) string {
		return run.TranslatedJSON
	}))
	r.GET("/profiles/:id/predictive", artifactHandler(store, func(run *database.ProfileRun) string {
		return run.PredictiveJSON
	}))

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics endpoint
	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, appMetrics.GetStats())
	})

	// Cache stats endpoint
	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, appCache.Stats())
	})

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// artifactHandler serves one stored artifact as raw JSON.
func artifactHandler(store *database.Store, pick func(*database.ProfileRun) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		run, err := store.GetRun(c.Param("id"))
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "profile run not found"})
				return
			}
			c.Error(errors.NewIOError("Failed to load profile run", err))
			return
		}

		c.Data(http.StatusOK, "application/json", json.RawMessage(pick(run)))
	}
}
