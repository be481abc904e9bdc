package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/tmdb"
	"movie-reviews/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testImageBase = "https://image.tmdb.org/t/p/"

func matrixDetails() *tmdb.MovieDetails {
	return &tmdb.MovieDetails{
		ID:           603,
		Title:        "The Matrix",
		Overview:     "A hacker learns the truth.",
		ReleaseDate:  "1999-03-30",
		Runtime:      136,
		Genres:       []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		PosterPath:   "/poster.jpg",
		BackdropPath: "",
	}
}

func TestMovieService_GetMovie_MergesStats(t *testing.T) {
	tests := []struct {
		name      string
		stats     *entity.MovieReviewStats
		wantCount int64
		wantAvg   *float64
	}{
		{
			name:      "no reviews yields null average",
			stats:     &entity.MovieReviewStats{ReviewCount: 0},
			wantCount: 0,
			wantAvg:   nil,
		},
		{
			name:      "rounds to one decimal",
			stats:     &entity.MovieReviewStats{ReviewCount: 3, AverageRating: ptr(7.6666666)},
			wantCount: 3,
			wantAvg:   ptr(7.7),
		},
		{
			name:      "half rounds away from zero",
			stats:     &entity.MovieReviewStats{ReviewCount: 2, AverageRating: ptr(8.25)},
			wantCount: 2,
			wantAvg:   ptr(8.3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := new(mockReviewRepository)
			movies := new(mockMovieSource)
			svc := NewMovieService(reviews, movies, testImageBase, zap.NewNop())

			movies.On("GetMovie", mock.Anything, "603").Return(matrixDetails(), nil)
			reviews.On("GetMovieReviewStats", mock.Anything, "603").Return(tt.stats, nil)

			resp, err := svc.GetMovie(context.Background(), "603")
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, resp.ReviewCount)
			if tt.wantAvg == nil {
				assert.Nil(t, resp.AverageRating)
			} else {
				require.NotNil(t, resp.AverageRating)
				assert.InDelta(t, *tt.wantAvg, *resp.AverageRating, 1e-9)
			}
			assert.Equal(t, []string{"Action", "Science Fiction"}, resp.Genres)
			require.NotNil(t, resp.PosterPath)
			assert.Equal(t, "https://image.tmdb.org/t/p/w780/poster.jpg", *resp.PosterPath)
			assert.Nil(t, resp.BackdropPath)
		})
	}
}

func TestMovieService_GetMovie_UpstreamFailure(t *testing.T) {
	reviews := new(mockReviewRepository)
	movies := new(mockMovieSource)
	svc := NewMovieService(reviews, movies, testImageBase, zap.NewNop())

	cause := &tmdb.StatusError{StatusCode: 503}
	movies.On("GetMovie", mock.Anything, "603").Return(nil, cause)

	resp, err := svc.GetMovie(context.Background(), "603")
	assert.Nil(t, resp)
	assert.True(t, apperror.Is(err, apperror.KindUpstream))
	assert.ErrorIs(t, err, cause)
	reviews.AssertNotCalled(t, "GetMovieReviewStats", mock.Anything, mock.Anything)
}

func TestMovieService_GetMovie_StorageFailure(t *testing.T) {
	reviews := new(mockReviewRepository)
	movies := new(mockMovieSource)
	svc := NewMovieService(reviews, movies, testImageBase, zap.NewNop())

	movies.On("GetMovie", mock.Anything, "603").Return(matrixDetails(), nil)
	reviews.On("GetMovieReviewStats", mock.Anything, "603").Return(nil, errors.New("pool exhausted"))

	_, err := svc.GetMovie(context.Background(), "603")
	require.Error(t, err)
	assert.Equal(t, apperror.Kind(""), apperror.KindOf(err))
}

func TestMovieService_SearchMovies(t *testing.T) {
	page := &tmdb.MoviePage{
		Page:         1,
		Results:      []tmdb.MovieSummary{{ID: 603, Title: "The Matrix", PosterPath: "/p.jpg"}, {ID: 604, Title: "Reloaded"}},
		TotalPages:   1,
		TotalResults: 2,
	}

	t.Run("query goes to search", func(t *testing.T) {
		movies := new(mockMovieSource)
		svc := NewMovieService(new(mockReviewRepository), movies, testImageBase, zap.NewNop())
		movies.On("SearchMovies", mock.Anything, "matrix").Return(page, nil)

		resp, err := svc.SearchMovies(context.Background(), "  matrix ")
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)
		require.NotNil(t, resp.Results[0].PosterPath)
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/p.jpg", *resp.Results[0].PosterPath)
		assert.Nil(t, resp.Results[1].PosterPath)
		assert.Equal(t, 2, resp.TotalResults)
	})

	t.Run("blank query falls back to popular", func(t *testing.T) {
		movies := new(mockMovieSource)
		svc := NewMovieService(new(mockReviewRepository), movies, testImageBase, zap.NewNop())
		movies.On("GetPopularMovies", mock.Anything).Return(page, nil)

		resp, err := svc.SearchMovies(context.Background(), "   ")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
		movies.AssertNotCalled(t, "SearchMovies", mock.Anything, mock.Anything)
	})

	t.Run("upstream failure", func(t *testing.T) {
		movies := new(mockMovieSource)
		svc := NewMovieService(new(mockReviewRepository), movies, testImageBase, zap.NewNop())
		movies.On("SearchMovies", mock.Anything, "matrix").Return(nil, tmdb.ErrCircuitOpen)

		_, err := svc.SearchMovies(context.Background(), "matrix")
		assert.True(t, apperror.Is(err, apperror.KindUpstream))
		assert.ErrorIs(t, err, tmdb.ErrCircuitOpen)
	})
}

func TestMovieService_GetPopularMovies_EmptyResults(t *testing.T) {
	movies := new(mockMovieSource)
	svc := NewMovieService(new(mockReviewRepository), movies, testImageBase, zap.NewNop())
	movies.On("GetPopularMovies", mock.Anything).Return(&tmdb.MoviePage{Page: 1}, nil)

	resp, err := svc.GetPopularMovies(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func ptr[T any](v T) *T {
	return &v
}
