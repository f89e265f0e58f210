package routes

import (
	"net/http"

	"igreja-digital/secretaria/internal/api"
	"igreja-digital/secretaria/internal/logging"
	"igreja-digital/secretaria/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes assembles the chi router: global middleware, the health
// check and the full API surface.
func RegisterRoutes(deps *api.Dependencies) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	handlers := api.NewHandlers(deps)

	r.Get("/health", handlers.Health())

	RegisterAPIRoutes(r, handlers, deps)

	return r
}
