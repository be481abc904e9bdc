package adaptor

import (
	"net/http"

	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovie handles GET /api/movies/{tmdbMovieId}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovie(r.Context(), chi.URLParam(r, "tmdbMovieId"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// GetPopularMovies handles GET /api/movies/popular
func (h *MovieHandler) GetPopularMovies(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetPopularMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get popular movies")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// SearchMovies handles GET /api/movies/search?query=
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.SearchMovies(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		handleServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}
