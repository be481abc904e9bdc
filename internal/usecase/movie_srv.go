package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/tmdb"
	"movie-reviews/pkg/apperror"

	"go.uber.org/zap"
)

// TMDb image widths per surface.
const (
	posterSizeDetails = "w780"
	backdropSize      = "original"
	posterSizeList    = "w500"
)

// MovieService merges catalogue metadata with local review statistics.
// Nothing is cached and failed upstream calls are not retried.
type MovieService interface {
	GetMovie(ctx context.Context, tmdbMovieID string) (*response.MovieDetailsResponse, error)
	GetPopularMovies(ctx context.Context) (*response.MoviePageResponse, error)
	SearchMovies(ctx context.Context, query string) (*response.MoviePageResponse, error)
}

type movieService struct {
	reviewRepo   repository.ReviewRepository
	movies       MovieSource
	imageBaseURL string
	log          *zap.Logger
}

func NewMovieService(
	reviewRepo repository.ReviewRepository,
	movies MovieSource,
	imageBaseURL string,
	log *zap.Logger,
) MovieService {
	return &movieService{
		reviewRepo:   reviewRepo,
		movies:       movies,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		log:          log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovie(ctx context.Context, tmdbMovieID string) (*response.MovieDetailsResponse, error) {
	movie, err := s.movies.GetMovie(ctx, tmdbMovieID)
	if err != nil {
		s.log.Warn("Movie source failed", zap.Error(err), zap.String("tmdb_movie_id", tmdbMovieID))
		return nil, apperror.Upstream("tmdb client error", err)
	}

	stats, err := s.reviewRepo.GetMovieReviewStats(ctx, tmdbMovieID)
	if err != nil {
		s.log.Error("Failed to get review stats", zap.Error(err), zap.String("tmdb_movie_id", tmdbMovieID))
		return nil, fmt.Errorf("get review stats: %w", err)
	}

	genres := make([]string, 0, len(movie.Genres))
	for _, g := range movie.Genres {
		genres = append(genres, g.Name)
	}

	resp := &response.MovieDetailsResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		Overview:     movie.Overview,
		ReleaseDate:  movie.ReleaseDate,
		Runtime:      movie.Runtime,
		Genres:       genres,
		PosterPath:   s.imageURL(posterSizeDetails, movie.PosterPath),
		BackdropPath: s.imageURL(backdropSize, movie.BackdropPath),
		ReviewCount:  stats.ReviewCount,
	}

	if stats.ReviewCount > 0 && stats.AverageRating != nil {
		avg := roundRating(*stats.AverageRating)
		resp.AverageRating = &avg
	}

	return resp, nil
}

func (s *movieService) GetPopularMovies(ctx context.Context) (*response.MoviePageResponse, error) {
	page, err := s.movies.GetPopularMovies(ctx)
	if err != nil {
		s.log.Warn("Movie source failed", zap.Error(err), zap.String("endpoint", "popular"))
		return nil, apperror.Upstream("tmdb client error", err)
	}
	return s.toPage(page), nil
}

// SearchMovies falls back to the popular list for a blank query.
func (s *movieService) SearchMovies(ctx context.Context, query string) (*response.MoviePageResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetPopularMovies(ctx)
	}

	page, err := s.movies.SearchMovies(ctx, query)
	if err != nil {
		s.log.Warn("Movie source failed", zap.Error(err), zap.String("endpoint", "search"))
		return nil, apperror.Upstream("tmdb client error", err)
	}
	return s.toPage(page), nil
}

func (s *movieService) toPage(page *tmdb.MoviePage) *response.MoviePageResponse {
	results := make([]response.MoviePageResult, 0, len(page.Results))
	for _, m := range page.Results {
		results = append(results, response.MoviePageResult{
			ID:          m.ID,
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
			PosterPath:  s.imageURL(posterSizeList, m.PosterPath),
		})
	}

	return &response.MoviePageResponse{
		Page:         page.Page,
		Results:      results,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
}

// imageURL returns nil for movies TMDb has no artwork for.
func (s *movieService) imageURL(size, path string) *string {
	if path == "" {
		return nil
	}
	u := s.imageBaseURL + "/" + size + path
	return &u
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
