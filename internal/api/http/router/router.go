package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dtroode/pollkeeper/internal/api/http/handler"
	"github.com/dtroode/pollkeeper/internal/api/http/middleware"
	"github.com/dtroode/pollkeeper/internal/logger"
	"github.com/dtroode/pollkeeper/internal/model"
)

// Router represents the HTTP router for poll operations.
type Router struct {
	authService    middleware.AuthService
	pollService    handler.PollService
	pinger         handler.Pinger
	contextManager model.ContextManager
	corsOrigins    []string
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService middleware.AuthService,
	pollService handler.PollService,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	corsOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		pollService:    pollService,
		pinger:         pinger,
		contextManager: contextManager,
		corsOrigins:    corsOrigins,
		logger:         logger,
	}
}

// Register builds the handler tree. Registration and health are public;
// everything under /polls requires HTTP Basic credentials.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	pollHandler := handler.NewPoll(r.pollService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.pinger, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.Recoverer)
	mux.Use(logging.Handler)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "WWW-Authenticate"},
		MaxAge:         300,
	}))
	mux.Use(chimw.StripSlashes)

	mux.Get("/health", healthHandler.Check)
	mux.Post("/register", pollHandler.Register)

	mux.Group(func(protected chi.Router) {
		protected.Use(authenticate.Handler)
		protected.Get("/polls", pollHandler.List)
		protected.Get("/polls/{id}", pollHandler.Get)
	})

	return mux
}
