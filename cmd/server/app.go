package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/duelport/cardvault/internal/config"
	"github.com/duelport/cardvault/internal/platform/catalog"
	"github.com/duelport/cardvault/internal/platform/postgres"
	"github.com/duelport/cardvault/internal/service/auth"
	"github.com/duelport/cardvault/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil in catalog-only mode (no database URL configured).
	db *sql.DB

	// Flat-file catalog stores
	cardStore     store.CardStore
	feedbackStore store.FeedbackStore
	faqStore      store.FAQStore

	// Relational stores, nil in catalog-only mode
	libraryStore store.LibraryStore
	deckStore    store.DeckStore
	userStore    store.UserStore

	jwtService auth.JWTService
}

// newApplication wires the stores and services from the configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,

		cardStore:     catalog.NewFileCardStore(cfg.Catalog.DataDir, logger),
		feedbackStore: catalog.NewFileFeedbackStore(cfg.Catalog.DataDir, logger),
		faqStore:      catalog.NewFileFAQStore(cfg.Catalog.DataDir),
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	if cfg.Database.URL == "" {
		logger.Warn("no database URL configured, /sql routes disabled")
		return app, nil
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.db = db

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(db, logger); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	app.libraryStore = postgres.NewPostgresLibraryStore(db, logger)
	app.deckStore = postgres.NewPostgresDeckStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, logger)

	return app, nil
}

// cleanup releases the application resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
