// Seed tool for local development: sets up the schema and creates a
// demo project with a configured outline so the API has something to
// generate against.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"draftdeck/internal/config"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/services"
	"draftdeck/internal/repository/postgres"
	"draftdeck/internal/service"
	"draftdeck/internal/service/outline"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// demoUserID is the fixed dev user; matches the local auth stub tokens.
const demoUserID = "00000000-0000-0000-0000-000000000001"

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	// Create repositories and services
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

	projectService := service.NewProjectService(projectRepo, sectionRepo, logger)
	outlineService := outline.NewService(projectRepo, sectionRepo, revisionRepo, feedbackRepo, commentRepo, txManager, logger)

	// Seed the demo project with a configured outline
	log.Println("📝 Creating demo project...")
	project, err := projectService.CreateProject(ctx, &services.CreateProjectRequest{
		UserID:    demoUserID,
		Title:     "State of Renewable Energy",
		DocType:   models.DocTypeReport,
		MainTopic: "Adoption and economics of renewable energy in 2026",
	})
	if err != nil {
		log.Fatalf("Failed to create demo project: %v", err)
	}
	log.Printf("✅ Created project %s", project.ID)

	entries := []services.OutlineEntryInput{
		{Index: intPtr(1), Title: "Executive Summary"},
		{Index: intPtr(2), Title: "Global Market Overview"},
		{Index: intPtr(3), Title: "Solar and Wind Economics"},
		{Index: intPtr(4), Title: "Grid Storage Challenges"},
		{Index: intPtr(5), Title: "Policy Outlook"},
	}
	if _, err := outlineService.Configure(ctx, project.ID, demoUserID, entries); err != nil {
		log.Fatalf("Failed to configure outline: %v", err)
	}
	log.Printf("✅ Configured %d sections", len(entries))

	log.Println("🎉 Seeding complete!")
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Comments,
		tables.Feedback,
		tables.Revisions,
		tables.Sections,
		tables.Projects,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  ✓ Dropped %s", table)
	}

	return nil
}

// intPtr returns a pointer to an int
func intPtr(n int) *int {
	return &n
}
