package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"docstore/internal/config"
	"docstore/internal/handler"
	"docstore/internal/importer"
	"docstore/internal/middleware"
	"docstore/internal/repository/postgres"
	"docstore/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"google.golang.org/genai"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

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
	docRepo := postgres.NewDocumentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create document service
	docService := service.NewDocumentService(docRepo, txManager, logger)

	// Setup importer. Without an API key the import route stays wired but
	// every call fails with import_failed.
	var geminiClient *genai.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, import endpoint will be unavailable")
	}

	fetcher := importer.NewFetcher()
	extractor := importer.NewGeminiExtractor(geminiClient, cfg.GeminiModel)
	importService := service.NewImportService(fetcher, extractor, docService, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, logger)
	importHandler := handler.NewImportHandler(importService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /api/v1/health", docHandler.HealthCheck)

	// Document routes
	mux.HandleFunc("GET /api/v1/docs", docHandler.ListDocs)
	mux.HandleFunc("POST /api/v1/docs", docHandler.CreateDoc)
	mux.HandleFunc("POST /api/v1/docs/import", importHandler.ImportDoc) // Must come before {id} route
	mux.HandleFunc("GET /api/v1/docs/by-slug/{slug}", docHandler.GetDocBySlug)
	mux.HandleFunc("GET /api/v1/docs/{id}", docHandler.GetDoc)
	mux.HandleFunc("PUT /api/v1/docs/{id}", docHandler.UpdateDoc)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Routes
	h = middleware.Recovery(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
