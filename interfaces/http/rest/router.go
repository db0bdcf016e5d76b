package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotpoints/application/ports"
	querybus "hotpoints/application/queries/bus"
	"hotpoints/infrastructure/config"
	"hotpoints/interfaces/http/rest/handlers"
	"hotpoints/interfaces/http/rest/middleware"
	apperrors "hotpoints/pkg/errors"
	"hotpoints/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	queryBus     *querybus.QueryBus
	store        ports.GraphStore
	errorHandler *apperrors.ErrorHandler
	metrics      *observability.QueryMetrics
	cfg          *config.Config
	logger       *zap.Logger
	instanceID   string
}

// NewRouter creates a new router instance
func NewRouter(
	queryBus *querybus.QueryBus,
	store ports.GraphStore,
	errorHandler *apperrors.ErrorHandler,
	metrics *observability.QueryMetrics,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		queryBus:     queryBus,
		store:        store,
		errorHandler: errorHandler,
		metrics:      metrics,
		cfg:          cfg,
		logger:       logger,
		instanceID:   uuid.New().String(),
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics && rt.metrics != nil {
		router.Use(middleware.Metrics(rt.metrics))
	}
	router.Use(rt.errorHandler.Middleware)

	// Any origin may read routes
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	if rt.cfg.EnableMetrics && rt.metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	routeHandler := handlers.NewRouteHandler(rt.queryBus, rt.errorHandler, rt.logger)
	router.Get("/route", routeHandler.GetRoute)

	router.Route("/locations", func(r chi.Router) {
		locationHandler := handlers.NewLocationHandler(rt.queryBus, rt.errorHandler, rt.logger)
		r.Get("/", locationHandler.ListLocations)
		r.Get("/{locationID}", locationHandler.GetLocation)
	})

	return router
}

type healthResponse struct {
	Status   string `json:"status"`
	Instance string `json:"instance"`
	Nodes    int    `json:"nodes"`
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Instance: rt.instanceID,
		Nodes:    len(rt.store.Nodes()),
	}, rt.logger)
}
