package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AndreyLitvishchenko/filmorate/config"
	"github.com/AndreyLitvishchenko/filmorate/internal/adapter"
	"github.com/AndreyLitvishchenko/filmorate/internal/director"
	"github.com/AndreyLitvishchenko/filmorate/internal/event"
	"github.com/AndreyLitvishchenko/filmorate/internal/film"
	"github.com/AndreyLitvishchenko/filmorate/internal/genre"
	"github.com/AndreyLitvishchenko/filmorate/internal/mpa"
	"github.com/AndreyLitvishchenko/filmorate/internal/recommendation"
	"github.com/AndreyLitvishchenko/filmorate/internal/repository"
	"github.com/AndreyLitvishchenko/filmorate/internal/review"
	"github.com/AndreyLitvishchenko/filmorate/internal/user"
	"github.com/AndreyLitvishchenko/filmorate/internal/worker"
	"github.com/AndreyLitvishchenko/filmorate/pkg/database"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// Reference rows inserted at startup, identifiers are stable across restarts
var (
	mpaRatings = []string{"G", "PG", "PG-13", "R", "NC-17"}
	genreNames = []string{"Comedy", "Drama", "Cartoon", "Thriller", "Documentary", "Action"}
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize logger with validation and defaults
	appLogger, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	appLogger.Info("Starting filmorate service")

	// Connect to database with validation and defaults
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		appLogger.Fatal("Failed to connect to database: " + err.Error())
	}

	appLogger.Info("Database connection established")

	// Run database migrations for all feature models
	err = db.AutoMigrate(
		&mpa.Mpa{},
		&genre.Genre{},
		&director.Director{},
		&user.User{},
		&user.Friendship{},
		&film.Film{},
		&film.Like{},
		&review.Review{},
		&review.Reaction{},
		&event.Event{},
	)
	if err != nil {
		appLogger.Fatal("Failed to migrate database: " + err.Error())
	}

	appLogger.Info("Database migration completed")

	// Initialize GORM-based repositories
	userRepo := repository.NewGORMUserRepository(db, appLogger)
	filmRepo := repository.NewGORMFilmRepository(db, appLogger)
	genreRepo := repository.NewGORMGenreRepository(db, appLogger)
	mpaRepo := repository.NewGORMMpaRepository(db, appLogger)
	directorRepo := repository.NewGORMDirectorRepository(db, appLogger)
	reviewRepo := repository.NewGORMReviewRepository(db, appLogger)
	eventRepo := repository.NewGORMEventRepository(db, appLogger)
	maintenanceRepo := repository.NewGORMMaintenanceRepository(db, appLogger)

	// Initialize recommendation-specific read views
	userReader := repository.NewGORMUserReader(db, appLogger)
	filmReader := repository.NewGORMFilmReader(db, appLogger)

	// Seed reference data
	if err := mpaRepo.Seed(mpaRatings); err != nil {
		appLogger.Fatal("Failed to seed MPA ratings: " + err.Error())
	}
	if err := genreRepo.Seed(genreNames); err != nil {
		appLogger.Fatal("Failed to seed genres: " + err.Error())
	}

	// Initialize business services with dependency injection
	userService := user.NewService(userRepo, eventRepo, appLogger)

	// Create adapters to bridge interface compatibility
	filmUserService := adapter.NewUserServiceToFilmUserService(userService)
	filmService := film.NewService(filmRepo, filmUserService, eventRepo, appLogger)

	genreService := genre.NewService(genreRepo, appLogger)
	mpaService := mpa.NewService(mpaRepo, appLogger)
	directorService := director.NewService(directorRepo, appLogger)

	reviewUserService := adapter.NewUserServiceToReviewUserService(userService)
	reviewFilmService := adapter.NewFilmServiceToReviewFilmService(filmService)
	reviewService := review.NewService(reviewRepo, reviewUserService, reviewFilmService, eventRepo, appLogger)

	recommendationService := recommendation.NewService(userReader, filmReader, appLogger)

	// Initialize HTTP handlers
	userHandler := user.NewHandler(userService)
	filmHandler := film.NewHandler(filmService)
	genreHandler := genre.NewHandler(genreService)
	mpaHandler := mpa.NewHandler(mpaService)
	directorHandler := director.NewHandler(directorService)
	reviewHandler := review.NewHandler(reviewService)
	recommendationHandler := recommendation.NewHandler(recommendationService)

	// Initialize background worker for dangling edge cleanup
	edgeCleanupWorker, err := worker.NewCleanupWorker(
		&cfg.Worker,
		"dangling-edge-cleanup",
		maintenanceRepo.PruneDanglingEdges,
		appLogger,
	)
	if err != nil {
		appLogger.Fatal("Failed to initialize cleanup worker: " + err.Error())
	}

	// Start background processing
	if err := edgeCleanupWorker.Start(); err != nil {
		appLogger.Error("Failed to start cleanup worker: " + err.Error())
	}

	// Setup HTTP router with middleware
	router := gin.New()

	// Configure standard middleware stack
	router.Use(requestid.New())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	// Health check endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "filmorate",
		})
	})

	router.GET("/health/detailed", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "healthy",
			"timestamp":      time.Now(),
			"service":        "filmorate",
			"cleanup_worker": edgeCleanupWorker.IsRunning(),
			"database":       "connected",
		})
	})

	// Register feature routes - each feature manages its own routes
	root := router.Group("/")
	{
		userHandler.RegisterRoutes(root)
		filmHandler.RegisterRoutes(root)
		genreHandler.RegisterRoutes(root)
		mpaHandler.RegisterRoutes(root)
		directorHandler.RegisterRoutes(root)
		reviewHandler.RegisterRoutes(root)
		recommendationHandler.RegisterRoutes(root)
	}

	// Parse server configuration with defaults
	serverPort := cfg.Server.Port
	if serverPort == "" {
		serverPort = "8080" // default
	}

	serverReadTimeout := 30 * time.Second // default
	if cfg.Server.ReadTimeout != "" {
		if duration, err := time.ParseDuration(cfg.Server.ReadTimeout); err == nil {
			serverReadTimeout = duration
		}
	}

	serverWriteTimeout := 30 * time.Second // default
	if cfg.Server.WriteTimeout != "" {
		if duration, err := time.ParseDuration(cfg.Server.WriteTimeout); err == nil {
			serverWriteTimeout = duration
		}
	}

	serverEnvironment := cfg.Server.Environment
	if serverEnvironment == "" {
		serverEnvironment = "development" // default
	}

	// Start HTTP server
	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
	}

	// Start server in goroutine for graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server: " + err.Error())
		}
	}()

	appLogger.Info("Server started successfully on port " + serverPort + " (" + serverEnvironment + " environment)")

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop cleanup worker first
	if err := edgeCleanupWorker.Stop(); err != nil {
		appLogger.Error("Error stopping cleanup worker: " + err.Error())
	}

	// Shutdown server with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown: " + err.Error())
	}

	appLogger.Info("Server shutdown complete")
}
