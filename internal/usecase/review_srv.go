package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService owns review CRUD. ListUserReviews returns oldest first,
// ListMovieReviews newest first.
type ReviewService interface {
	GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	ListUserReviews(ctx context.Context, userID uuid.UUID) ([]response.ReviewResponse, error)
	ListMovieReviews(ctx context.Context, tmdbMovieID string, viewerID *uuid.UUID) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.CreatedResponse, error)
	UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	log        *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	id, err := parseReviewID(reviewID)
	if err != nil {
		return nil, err
	}

	view, err := s.reviewRepo.FindViewByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("get review: %w", err)
	}
	if view == nil {
		return nil, apperror.NotFound("review", reviewID)
	}

	resp := response.ReviewToResponse(view)
	return &resp, nil
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID uuid.UUID) ([]response.ReviewResponse, error) {
	views, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list user reviews", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list user reviews: %w", err)
	}
	return response.ReviewsToResponse(views), nil
}

func (s *reviewService) ListMovieReviews(ctx context.Context, tmdbMovieID string, viewerID *uuid.UUID) ([]response.ReviewResponse, error) {
	views, err := s.reviewRepo.ListByMovie(ctx, tmdbMovieID, viewerID)
	if err != nil {
		s.log.Error("Failed to list movie reviews", zap.Error(err), zap.String("tmdb_movie_id", tmdbMovieID))
		return nil, fmt.Errorf("list movie reviews: %w", err)
	}
	return response.ReviewsToResponse(views), nil
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.CreatedResponse, error) {
	if err := validationError(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate review id: %w", err)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        id,
			CreatedAt: time.Now().UTC(),
		},
		UserID:         userID,
		TmdbMovieID:    req.TmdbMovieID,
		TmdbMovieTitle: req.TmdbMovieTitle,
		Title:          req.Title,
		ReviewText:     req.ReviewText,
		Rating:         req.Rating,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", id.String()),
		zap.String("user_id", userID.String()),
		zap.String("tmdb_movie_id", req.TmdbMovieID),
	)
	return &response.CreatedResponse{ID: id.String()}, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) error {
	if err := validationError(req); err != nil {
		return err
	}

	review, err := s.ownedReview(ctx, reviewID, userID, "update")
	if err != nil {
		return err
	}

	review.Title = req.Title
	review.ReviewText = req.ReviewText
	review.Rating = req.Rating

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return err
	}

	s.log.Info("Review updated", zap.String("review_id", reviewID))
	return nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	review, err := s.ownedReview(ctx, reviewID, userID, "delete")
	if err != nil {
		return err
	}

	return s.reviewRepo.Delete(ctx, review.ID)
}

// ownedReview resolves NotFound before checking the author, so a missing
// review is never reported as a permission problem.
func (s *reviewService) ownedReview(ctx context.Context, reviewID string, userID uuid.UUID, action string) (*entity.Review, error) {
	id, err := parseReviewID(reviewID)
	if err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("load review: %w", err)
	}
	if review == nil {
		return nil, apperror.NotFound("review", reviewID)
	}

	if review.UserID != userID {
		s.log.Warn("Review ownership check failed",
			zap.String("review_id", reviewID),
			zap.String("user_id", userID.String()),
		)
		return nil, apperror.Auth(fmt.Sprintf("unauthorized to %s this review", action))
	}

	return review, nil
}
