// Package api exposes the optimization engine over HTTP. Routing,
// status mapping, CORS, and rate limiting live here; all domain logic
// stays behind the app.Optimizer.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"cruxen/app"
	"cruxen/internal/config"
	"cruxen/ports"
)

// serviceVersion is reported by the root and health endpoints.
const serviceVersion = "2.0"

// App is the HTTP application over the optimization engine.
type App struct {
	router    *chi.Mux
	cfg       config.ServerConfig
	optimizer *app.Optimizer
	llmCfg    config.LLMConfig
	// completer is nil when no API key is configured; /chat then
	// answers 503 instead of failing startup.
	completer ports.Completer
}

// NewApp wires the router, middleware, and routes.
func NewApp(cfg *config.Config, optimizer *app.Optimizer, completer ports.Completer) *App {
	a := &App{
		router:    chi.NewRouter(),
		cfg:       cfg.Server,
		llmCfg:    cfg.LLM,
		optimizer: optimizer,
		completer: completer,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RealIP)
	a.router.Use(requestID)
	a.router.Use(requestLogger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	a.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	a.router.Use(httprate.Limit(
		a.cfg.RateLimitRPM,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleRoot)
	a.router.Get("/health", a.handleHealth)

	a.router.Get("/frameworks", a.handleListFrameworks)
	a.router.Get("/frameworks/{id}", a.handleGetFramework)

	a.router.Group(func(r chi.Router) {
		r.Use(requireJSON)
		r.Post("/optimize", a.handleOptimize)
		r.Post("/chat", a.handleChat)
	})
}

// Handler returns the root http.Handler for server wiring and tests.
func (a *App) Handler() http.Handler {
	return a.router
}
