package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/auth"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MovieCatalog is the movie source plus the breaker state shown on /health.
// *tmdb.Client satisfies it.
type MovieCatalog interface {
	usecase.MovieSource
	adaptor.BreakerStater
}

// Deps are the long-lived collaborators built in main.
type Deps struct {
	Repo      *repository.Repository
	DB        adaptor.Pinger
	Movies    MovieCatalog
	Tokens    *auth.TokenManager
	Passwords *auth.PasswordHasher
}

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from explicit constructors.
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.Movies, deps.Tokens, deps.Passwords, config, logger)
	handler := adaptor.NewHandler(service, logger)
	health := adaptor.NewHealthHandler(deps.DB, deps.Movies, logger)

	return &App{
		Router: setupRouter(handler, health, deps.Tokens, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	health *adaptor.HealthHandler,
	tokens middleware.TokenVerifier,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	requireAuth := middleware.Auth(tokens, logger)
	optionalAuth := middleware.OptionalAuth(tokens, logger)

	wireAuth(r, handler.Auth, requireAuth)
	wireUser(r, handler.User, requireAuth)
	wireReview(r, handler.Review, handler.Like, requireAuth)
	wireMovie(r, handler.Movie, handler.Review, optionalAuth)

	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
