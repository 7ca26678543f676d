package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "moviematch-backend/docs"
	"moviematch-backend/internal/cache"
	"moviematch-backend/internal/config"
	"moviematch-backend/internal/database"
	"moviematch-backend/internal/handlers"
	"moviematch-backend/internal/repository"
	"moviematch-backend/internal/routes"
	"moviematch-backend/internal/scheduler"
	"moviematch-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title MovieMatch Backend API
// @version 1.0
// @description Backend API for swipe-based movie discovery: TMDB catalog cache, per-device vote deduplication, preference profiles, trending snapshots, and recommendations
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/yourusername/moviematch-backend
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	// Optional Redis hot cache for trending snapshots
	trendingCache, err := cache.NewTrendingCache(cfg.Redis, log)
	if err != nil {
		log.Fatalf("Failed to initialize Redis trending cache: %v", err)
	}
	if trendingCache != nil {
		defer func() {
			if err := trendingCache.Close(); err != nil {
				log.Errorf("Error closing Redis connection: %v", err)
			}
		}()
	}

	movieRepo := repository.NewMovieRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	trendingRepo := repository.NewTrendingRepository(db)

	deviceService := services.NewDeviceService(cfg.Device, log)
	prefService := services.NewPreferenceService(prefRepo, log)
	movieService := services.NewMovieService(movieRepo, genreRepo, cfg, log)
	voteService := services.NewVoteService(voteRepo, movieRepo, prefService, deviceService, log)
	recService := services.NewRecommendationService(movieRepo, prefService, log)
	trendingService := services.NewTrendingService(trendingRepo, voteRepo, trendingCache, cfg.Trending, log)

	// Artwork storage is optional; without it PUT/DELETE artwork cleanup and
	// presigned uploads are disabled.
	var artworkService *services.ArtworkService
	if cfg.MinIO.Endpoint != "" {
		artworkService, err = services.NewArtworkService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize artwork storage: %v", err)
		}
		if ms, ok := movieService.(interface {
			SetArtworkService(*services.ArtworkService)
		}); ok {
			ms.SetArtworkService(artworkService)
		}
	}

	movieHandler := handlers.NewMovieHandler(movieService, log)
	voteHandler := handlers.NewVoteHandler(voteService, prefService, log)
	recHandler := handlers.NewRecommendationHandler(recService, log)
	trendingHandler := handlers.NewTrendingHandler(trendingService, log)
	deviceHandler := handlers.NewDeviceHandler(deviceService, log)
	uploadHandler := handlers.NewUploadHandler(artworkService, log)

	app := fiber.New(fiber.Config{
		AppName:               "MovieMatch Backend API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db, trendingCache))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Setup API routes
	routes.Setup(app, movieHandler, voteHandler, recHandler, trendingHandler, deviceHandler, uploadHandler)

	// Background trending recompute
	jobCtx, stopJobs := context.WithCancel(context.Background())
	trendingJob := scheduler.NewTrendingScheduler(trendingService, cfg.Trending.RecomputeInterval, log)
	trendingJob.Start(jobCtx)

	// Graceful shutdown
	go gracefulShutdown(app, trendingJob, stopJobs, log)

	log.Infof("MovieMatch Backend API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID, X-Device-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database, trendingCache *cache.TrendingCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		redisStatus := "disabled"
		if trendingCache != nil {
			redisStatus = "healthy"
			if err := trendingCache.HealthCheck(c.Context()); err != nil {
				redisStatus = "unhealthy"
			}
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "moviematch-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"redis":     redisStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, trendingJob *scheduler.TrendingScheduler, stopJobs context.CancelFunc, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopJobs()
	trendingJob.Wait()

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
