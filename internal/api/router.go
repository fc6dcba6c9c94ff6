package api

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/8bitGames/auto-contract/docs/swagger"
	"github.com/8bitGames/auto-contract/internal/auth"
	"github.com/8bitGames/auto-contract/internal/llm"
	"github.com/8bitGames/auto-contract/internal/pdf"
	"github.com/8bitGames/auto-contract/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
// Drafter and Renderer may be nil when the corresponding backend is not
// configured; the affected endpoints then return 503.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthHandlers   *auth.Handlers
	AuthMiddleware *auth.Middleware
	BearerAuth     *auth.BearerTokenMiddleware
	Templates      *store.TemplateStore
	Contracts      *store.ContractStore
	Users          *store.UserStore
	Tokens         auth.TokenStore
	Drafter        llm.Drafter
	Renderer       pdf.Renderer
}

// NewRouter assembles the full chi router: auth flow, health, metrics,
// Swagger UI, and the /api/v1 JSON API.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	if deps.SessionManager != nil {
		r.Use(deps.SessionManager.LoadAndSave)
	}

	// Auth routes (no auth required)
	if deps.AuthHandlers != nil {
		r.Get("/auth/login", deps.AuthHandlers.Login)
		r.Get("/auth/callback", deps.AuthHandlers.Callback)
		r.Post("/auth/logout", deps.AuthHandlers.Logout)
	}

	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI — no auth required.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	// Session-authenticated token management. Bootstraps API access: a
	// browser login is the only way to mint the first Bearer token.
	if deps.AuthMiddleware != nil {
		r.Route("/account", func(r chi.Router) {
			r.Use(jsonContentType)
			r.Use(deps.AuthMiddleware.RequireAuth)
			registerTokenRoutes(r, deps)
		})
	}

	r.Mount("/api/v1", NewAPIRouter(deps))

	return r
}

// NewAPIRouter creates the chi sub-router for /api/v1. All routes require
// Bearer token authentication and return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	// Bearer token authentication on all API routes.
	r.Use(deps.BearerAuth.Authenticate)

	registerTemplateRoutes(r, deps)
	registerContractRoutes(r, deps)
	registerAIRoutes(r, deps)
	registerRenderRoutes(r, deps)
	registerTokenRoutes(r, deps)
	registerUserRoutes(r, deps)

	return r
}

// handleHealth reports process liveness.
//
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
