package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"pagecompiler/application/services"
	"pagecompiler/infrastructure/config"
	"pagecompiler/interfaces/http/rest/handlers"
	"pagecompiler/interfaces/http/rest/middleware"
	"pagecompiler/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	documents *services.DocumentService
	compiler  *services.CompileService
	metrics   *observability.Metrics
	tracer    *observability.Tracer
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	documents *services.DocumentService,
	compiler *services.CompileService,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		documents: documents,
		compiler:  compiler,
		metrics:   metrics,
		tracer:    tracer,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Tracing(rt.tracer, rt.cfg.EnableTracing))

	// CORS configuration
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.pagecompiler.dev"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		documentHandler := handlers.NewDocumentHandler(rt.documents, rt.metrics, rt.logger)
		elementHandler := handlers.NewElementHandler(rt.compiler, rt.logger)

		// Document endpoints
		r.Route("/documents/{documentID}", func(r chi.Router) {
			r.Get("/", documentHandler.GetDocument)
			r.Post("/elements", documentHandler.AddElement)
			r.Post("/elements/{elementID}/clone", documentHandler.CloneElement)
		})

		// Element catalog and dry-run validation
		r.Route("/elements", func(r chi.Router) {
			r.Get("/", elementHandler.Catalog)
			r.Post("/validate", elementHandler.Validate)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
