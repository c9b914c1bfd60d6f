package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clientbase/docs"
	"clientbase/internal/auth"
	"clientbase/internal/config"
	"clientbase/internal/database"
	"clientbase/internal/database/migration"
	handlers "clientbase/internal/http/handler"
	"clientbase/internal/http/middleware"
	"clientbase/internal/otel"
	"clientbase/internal/repository/postgres"
	"clientbase/internal/service"
	"clientbase/internal/storage"
)

// @title Clientbase API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Tracing first so the DB driver and HTTP layer pick up the provider
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	tokens, err := auth.NewManager(cfg.JWT)
	if err != nil {
		log.Fatalf("failed to initialize token manager: %v", err)
	}

	// Initialize repositories and services
	userRepo := postgres.NewUserPostgres(db)
	teamRepo := postgres.NewTeamPostgres(db)
	clientRepo := postgres.NewClientPostgres(db)
	commentRepo := postgres.NewCommentPostgres(db)
	fileRepo := postgres.NewFilePostgres(db)

	authSvc := service.NewAuthService(userRepo, teamRepo, tokens)
	clientSvc := service.NewClientService(clientRepo, commentRepo, fileRepo, objStore)
	commentSvc := service.NewCommentService(clientRepo, commentRepo)
	fileSvc := service.NewFileService(clientRepo, fileRepo, objStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(promRegistry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       db,
		Users:    userRepo,
		Tokens:   tokens,
		Auth:     authSvc,
		Clients:  clientSvc,
		Comments: commentSvc,
		Files:    fileSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
