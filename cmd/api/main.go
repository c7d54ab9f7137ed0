package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/chairulsabri/backend-windows-explorer/docs"
	"github.com/chairulsabri/backend-windows-explorer/internal/config"
	"github.com/chairulsabri/backend-windows-explorer/internal/database"
	"github.com/chairulsabri/backend-windows-explorer/internal/database/migration"
	handlers "github.com/chairulsabri/backend-windows-explorer/internal/http/handler"
	"github.com/chairulsabri/backend-windows-explorer/internal/http/middleware"
	"github.com/chairulsabri/backend-windows-explorer/internal/logging"
	"github.com/chairulsabri/backend-windows-explorer/internal/otel"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository/postgres"
	"github.com/chairulsabri/backend-windows-explorer/internal/service"
	"github.com/chairulsabri/backend-windows-explorer/internal/storage"
)

// @title Explorer API
// @version 1.0
// @description Folders, files and favorites of a virtual file explorer.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		fatal(logger, "failed to initialize tracing", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error("tracing shutdown failed", "error", err)
		}
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		fatal(logger, "failed to connect to database", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			fatal(logger, "failed to migrate database", err)
		}
	}

	// Object storage only backs tree snapshots; without it the rest of the API still works.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			fatal(logger, "failed to initialize object storage", err)
		}
	} else {
		logger.Warn("object storage not configured, snapshot export disabled")
	}

	// Initialize repositories and services
	folderRepo := postgres.NewFolderPostgres(db)
	fileRepo := postgres.NewFilePostgres(db)
	favoriteRepo := postgres.NewFavoritePostgres(db)
	txManager := postgres.NewTransactionManager(db)

	folderSvc := service.NewFolderService(folderRepo, fileRepo, txManager, logger)
	fileSvc := service.NewFileService(fileRepo, folderRepo, logger)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, logger)
	snapshotSvc := service.NewSnapshotService(folderSvc, objStore, cfg.MinIO.PresignExpiry, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		fatal(logger, "failed to register metrics", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// otelfiber starts the server span; everything after it logs the trace id
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
	}))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(cfg.Location()))
	app.Use(metrics.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, handlers.Services{
		Folders:   folderSvc,
		Files:     fileSvc,
		Favorites: favoriteSvc,
		Snapshots: snapshotSvc,
		Metrics:   registry,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", handlers.Swagger(docs.SwaggerInfo))

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("server starting", "addr", addr, "storage_enabled", objStore != nil)

	if err := app.Listen(addr); err != nil {
		fatal(logger, "failed to start server", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
