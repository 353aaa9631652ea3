package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"lawmap/application/commands/bus"
	querybus "lawmap/application/queries/bus"
	"lawmap/infrastructure/config"
	"lawmap/interfaces/http/rest/handlers"
	"lawmap/interfaces/http/rest/middleware"
	"lawmap/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	config     *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		config:     cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		metrics:    metrics,
		logger:     logger,
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
	if rt.config.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.config.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		articleHandler := handlers.NewArticleHandler(rt.queryBus, rt.logger)
		r.Get("/categories", articleHandler.ListCategories)
		r.Get("/articles", articleHandler.ListArticles)
		r.Get("/articles/{articleID}", articleHandler.GetArticle)

		r.Route("/regulations", func(r chi.Router) {
			regulationHandler := handlers.NewRegulationHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", regulationHandler.CreateRegulation)
			r.Get("/", regulationHandler.ListRegulations)
			r.Put("/{regulationID}", regulationHandler.UpdateRegulation)
			r.Delete("/{regulationID}", regulationHandler.DeleteRegulation)
		})

		r.Route("/links", func(r chi.Router) {
			linkHandler := handlers.NewLinkHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", linkHandler.CreateLink)
			r.Get("/", linkHandler.ListLinks)
			r.Put("/{linkID}", linkHandler.UpdateLink)
			r.Delete("/{linkID}", linkHandler.DeleteLink)
		})

		r.Route("/notes", func(r chi.Router) {
			noteHandler := handlers.NewNoteHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", noteHandler.CreateNote)
			r.Get("/", noteHandler.ListNotes)
			r.Put("/{noteID}", noteHandler.UpdateNote)
			r.Delete("/{noteID}", noteHandler.DeleteNote)
		})

		r.Route("/themes", func(r chi.Router) {
			themeHandler := handlers.NewThemeHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", themeHandler.CreateTheme)
			r.Get("/", themeHandler.ListThemes)
			r.Put("/{themeID}", themeHandler.UpdateTheme)
			r.Delete("/{themeID}", themeHandler.DeleteTheme)
			r.Post("/{themeID}/sections", themeHandler.AddSection)
			r.Delete("/{themeID}/sections/{sectionID}", themeHandler.RemoveSection)
			r.Put("/{themeID}/sections/{sectionID}/articles", themeHandler.AssignArticle)
			r.Delete("/{themeID}/articles/{articleID}", themeHandler.RemoveArticle)
		})

		graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.logger)
		r.Get("/graph-data", graphHandler.GetGraphData)
		r.Get("/stats", graphHandler.GetStats)

		backupHandler := handlers.NewBackupHandler(rt.commandBus, rt.queryBus, rt.logger)
		r.Post("/backup/import", backupHandler.Import)
		r.Get("/backup/export", backupHandler.Export)
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
