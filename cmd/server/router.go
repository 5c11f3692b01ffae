package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/slidegen/slidegen-api/internal/api"
	apiMiddleware "github.com/slidegen/slidegen-api/internal/api/middleware"
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
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	presentationHandler := api.NewPresentationHandler(app.presentationService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Public share route: the opaque token is the only credential
		r.Get("/presentations/share/{token}", presentationHandler.GetShared)

		// Routes below carry a user identity. Real authentication is not
		// wired yet, so a placeholder identity middleware injects the
		// constant user ID that handlers will later read from real auth.
		r.Group(func(r chi.Router) {
			r.Use(apiMiddleware.PlaceholderIdentity)

			r.Post("/presentations/generate", presentationHandler.Generate)
			r.Get("/presentations", presentationHandler.List)
			r.Get("/presentations/{id}", presentationHandler.Get)
			r.Put("/presentations/{id}", presentationHandler.Update)
			r.Delete("/presentations/{id}", presentationHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
