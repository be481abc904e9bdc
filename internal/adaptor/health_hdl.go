package adaptor

import (
	"context"
	"net/http"
	"time"

	"movie-reviews/pkg/utils"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerStater is satisfied by *tmdb.Client.
type BreakerStater interface {
	State() gobreaker.State
}

// HealthHandler reports database reachability and the movie source breaker.
// An open breaker degrades the report but does not fail it, since reviews
// are still served.
type HealthHandler struct {
	db      Pinger
	movies  BreakerStater
	timeout time.Duration
	log     *zap.Logger
}

func NewHealthHandler(db Pinger, movies BreakerStater, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		movies:  movies,
		timeout: 2 * time.Second,
		log:     log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	checks := map[string]string{
		"database": "up",
		"tmdb":     h.movies.State().String(),
	}

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		checks["database"] = "down"
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "unhealthy", checks, nil)
		return
	}

	utils.ResponseSuccess(w, "ok", checks)
}
