package adaptor

import (
	"context"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.RegisterResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) ListUserReviews(ctx context.Context, userID uuid.UUID) ([]response.ReviewResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) ListMovieReviews(ctx context.Context, tmdbMovieID string, viewerID *uuid.UUID) ([]response.ReviewResponse, error) {
	args := m.Called(ctx, tmdbMovieID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.CreatedResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CreatedResponse), args.Error(1)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) error {
	args := m.Called(ctx, reviewID, userID, req)
	return args.Error(0)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

type mockLikeService struct {
	mock.Mock
}

func (m *mockLikeService) LikeReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

func (m *mockLikeService) UnlikeReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

func (m *mockLikeService) CountLikes(ctx context.Context, reviewID string) (*response.LikeCountResponse, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LikeCountResponse), args.Error(1)
}

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) GetMovie(ctx context.Context, tmdbMovieID string) (*response.MovieDetailsResponse, error) {
	args := m.Called(ctx, tmdbMovieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieDetailsResponse), args.Error(1)
}

func (m *mockMovieService) GetPopularMovies(ctx context.Context) (*response.MoviePageResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MoviePageResponse), args.Error(1)
}

func (m *mockMovieService) SearchMovies(ctx context.Context, query string) (*response.MoviePageResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MoviePageResponse), args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubBreaker struct{ state gobreaker.State }

func (b stubBreaker) State() gobreaker.State { return b.state }
