package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"draftdeck/internal/auth"
	"draftdeck/internal/config"
	"draftdeck/internal/handler"
	"draftdeck/internal/middleware"
	"draftdeck/internal/repository/postgres"
	"draftdeck/internal/service"
	"draftdeck/internal/service/export"
	"draftdeck/internal/service/generation"
	"draftdeck/internal/service/outline"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names and make sure the schema exists
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	projectRepo := postgres.NewProjectRepository(repoConfig)
	sectionRepo := postgres.NewSectionRepository(repoConfig)
	revisionRepo := postgres.NewRevisionRepository(repoConfig)
	feedbackRepo := postgres.NewFeedbackRepository(repoConfig)
	commentRepo := postgres.NewCommentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Setup the text generation provider and prompt registry
	provider, err := generation.SetupProvider(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup generation provider: %v", err)
	}
	prompts, err := generation.NewPromptRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize prompt registry: %v", err)
	}

	// Create services
	projectService := service.NewProjectService(projectRepo, sectionRepo, logger)
	outlineService := outline.NewService(projectRepo, sectionRepo, revisionRepo, feedbackRepo, commentRepo, txManager, logger)
	generationService := generation.NewService(projectRepo, sectionRepo, revisionRepo, txManager, provider, prompts, cfg.GenerationTimeout, logger)
	feedbackService := service.NewFeedbackService(projectRepo, sectionRepo, feedbackRepo, commentRepo, logger)
	builder := export.NewPandocBuilder(cfg.PandocPath)
	exportService := export.NewService(projectRepo, sectionRepo, builder, logger)

	// Create handlers
	projectHandler := handler.NewProjectHandler(projectService, logger)
	outlineHandler := handler.NewOutlineHandler(outlineService, logger)
	generationHandler := handler.NewGenerationHandler(generationService, logger)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, logger)
	exportHandler := handler.NewExportHandler(exportService, logger)

	logger.Info("services initialized", "provider", provider.Name())

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)

	// Outline configuration
	mux.HandleFunc("POST /api/projects/{id}/sections", outlineHandler.ConfigureSections)

	// Generation routes
	mux.HandleFunc("POST /api/projects/{id}/generate", generationHandler.GenerateProject)
	mux.HandleFunc("POST /api/sections/{id}/refine", generationHandler.RefineSection)

	// Feedback routes
	mux.HandleFunc("POST /api/sections/{id}/feedback", feedbackHandler.AddFeedback)
	mux.HandleFunc("POST /api/sections/{id}/comments", feedbackHandler.AddComment)
	mux.HandleFunc("GET /api/projects/{id}/comments", feedbackHandler.ProjectComments)

	// Export routes
	mux.HandleFunc("GET /api/projects/{id}/export/{format}", exportHandler.ExportProject)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(jwtVerifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // Generation batches can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
