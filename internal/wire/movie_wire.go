package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	reviewHandler *adaptor.ReviewHandler,
	optionalAuth func(http.Handler) http.Handler,
) {
	r.Get("/api/movies/popular", movieHandler.GetPopularMovies)
	r.Get("/api/movies/search", movieHandler.SearchMovies)
	r.Get("/api/movies/{tmdbMovieId}", movieHandler.GetMovie)

	// likedByMe is filled in when a valid token is sent
	r.With(optionalAuth).Get("/api/movies/{tmdbMovieId}/reviews", reviewHandler.GetMovieReviews)
}
