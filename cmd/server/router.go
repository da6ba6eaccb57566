package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/duelport/cardvault/internal/api"
	apiMiddleware "github.com/duelport/cardvault/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(app.config.Server.RequestTimeoutSeconds) * time.Second))
	r.Use(apiMiddleware.TraceMiddleware)

	if len(app.config.Server.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   app.config.Server.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Create API handlers using the application's stores
	cardHandler := api.NewCardHandler(app.cardStore, app.logger)
	feedbackHandler := api.NewFeedbackHandler(app.feedbackStore, app.logger)
	faqHandler := api.NewFAQHandler(app.faqStore, app.logger)

	// Register the flat-file catalog routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/cards", cardHandler.ListCards)
		r.Post("/cards", cardHandler.CreateCard)
		r.Get("/cards/{id}", cardHandler.GetCard)
		r.Put("/cards/{id}", cardHandler.UpdateCard)
		r.Delete("/cards/{id}", cardHandler.DeleteCard)

		r.Get("/promos", cardHandler.ListPromos)
		r.Post("/feedback", feedbackHandler.CreateFeedback)
		r.Get("/faq", faqHandler.ListFAQ)
	})

	// Register the relational routes when a database is configured
	if app.db != nil {
		libraryHandler := api.NewLibraryHandler(app.libraryStore, app.logger)
		deckHandler := api.NewDeckHandler(app.deckStore, app.logger)
		authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.logger)
		authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

		r.Route("/sql", func(r chi.Router) {
			r.Get("/cards", libraryHandler.SearchCards)

			// Credential endpoints (public, rate limited)
			r.Group(func(r chi.Router) {
				r.Use(httprate.LimitByIP(10, time.Minute))
				r.Post("/login", authHandler.Login)
				r.Post("/register", authHandler.Register)
			})

			// Deck routes require a session token
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/decks/{id}", deckHandler.ListDeck)
				r.Get("/recommended/{id}", deckHandler.ListRecommended)
				r.Post("/decks", deckHandler.AddCard)
			})
		})
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Serve the browser frontend when configured
	if dir := app.config.Catalog.StaticDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			r.Handle("/*", http.FileServer(http.Dir(dir)))
		} else {
			app.logger.Warn("static directory missing, not serving frontend", "dir", dir)
		}
	}

	return r
}
