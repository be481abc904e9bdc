package usecase

import (
	"context"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/tmdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Mock User Repository ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// --- Mock Review Repository ---

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*entity.ReviewView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReviewView), args.Error(1)
}

func (m *mockReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ReviewView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ReviewView), args.Error(1)
}

func (m *mockReviewRepository) ListByMovie(ctx context.Context, tmdbMovieID string, viewerID *uuid.UUID) ([]entity.ReviewView, error) {
	args := m.Called(ctx, tmdbMovieID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ReviewView), args.Error(1)
}

func (m *mockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReviewRepository) GetMovieReviewStats(ctx context.Context, tmdbMovieID string) (*entity.MovieReviewStats, error) {
	args := m.Called(ctx, tmdbMovieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MovieReviewStats), args.Error(1)
}

// --- Mock Like Repository ---

type mockLikeRepository struct {
	mock.Mock
}

func (m *mockLikeRepository) Create(ctx context.Context, like *entity.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *mockLikeRepository) Delete(ctx context.Context, like *entity.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *mockLikeRepository) CountByReviewID(ctx context.Context, reviewID uuid.UUID) (int64, error) {
	args := m.Called(ctx, reviewID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock Movie Source ---

type mockMovieSource struct {
	mock.Mock
}

func (m *mockMovieSource) GetMovie(ctx context.Context, movieID string) (*tmdb.MovieDetails, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.MovieDetails), args.Error(1)
}

func (m *mockMovieSource) GetPopularMovies(ctx context.Context) (*tmdb.MoviePage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.MoviePage), args.Error(1)
}

func (m *mockMovieSource) SearchMovies(ctx context.Context, query string) (*tmdb.MoviePage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.MoviePage), args.Error(1)
}

// --- Mock Token Issuer ---

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) IssueToken(userID string) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
