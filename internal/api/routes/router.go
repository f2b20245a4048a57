package routes

import (
	"net/http"

	"github.com/zatekoja/cpapmaskselector/internal/api/handlers"
	"github.com/zatekoja/cpapmaskselector/internal/api/middleware"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	healthHandler         *handlers.HealthHandler
	recommendationHandler *handlers.RecommendationHandler
	catalogHandler        *handlers.CatalogHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	healthHandler *handlers.HealthHandler,
	recommendationHandler *handlers.RecommendationHandler,
	catalogHandler *handlers.CatalogHandler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                   http.NewServeMux(),
		healthHandler:         healthHandler,
		recommendationHandler: recommendationHandler,
		catalogHandler:        catalogHandler,
		allowedOrigins:        allowedOrigins,
		metrics:               metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoints
	r.mux.HandleFunc("GET /health", r.healthHandler.Health)
	r.mux.HandleFunc("GET /api/health", r.healthHandler.Health)

	// Recommendation endpoint
	r.mux.HandleFunc("POST /api/recommend", r.recommendationHandler.Recommend)

	// Catalog endpoints
	if r.catalogHandler != nil {
		r.mux.HandleFunc("GET /api/catalog", r.catalogHandler.ListCatalog)
		r.mux.HandleFunc("GET /api/catalog/query", r.catalogHandler.QueryCatalog)
	}

	r.mux.HandleFunc("/api/", handlers.NotFound)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so preflights never reach the handlers
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
