package usecase

import (
	"context"
	"time"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/tmdb"
	"movie-reviews/pkg/apperror"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovieSource is the external movie catalogue; *tmdb.Client satisfies it.
type MovieSource interface {
	GetMovie(ctx context.Context, movieID string) (*tmdb.MovieDetails, error)
	GetPopularMovies(ctx context.Context) (*tmdb.MoviePage, error)
	SearchMovies(ctx context.Context, query string) (*tmdb.MoviePage, error)
}

type TokenIssuer interface {
	IssueToken(userID string) (string, time.Time, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
}

type Service struct {
	Auth   AuthService
	User   UserService
	Review ReviewService
	Like   LikeService
	Movie  MovieService
}

func NewService(
	repo *repository.Repository,
	movies MovieSource,
	tokens TokenIssuer,
	passwords PasswordHasher,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:   NewAuthService(repo.User, tokens, passwords, log),
		User:   NewUserService(repo.User, log),
		Review: NewReviewService(repo.Review, log),
		Like:   NewLikeService(repo.Like, log),
		Movie:  NewMovieService(repo.Review, movies, config.TMDB.ImageBaseURL, log),
	}
}

// parseReviewID treats a malformed id like an unknown one.
func parseReviewID(reviewID string) (uuid.UUID, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return uuid.Nil, apperror.NotFound("review", reviewID)
	}
	return id, nil
}

func validationError(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation(utils.FormatValidationErrors(errs))
	}
	return nil
}
