package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LikeService is idempotent in both directions. Authors may like their own reviews.
type LikeService interface {
	LikeReview(ctx context.Context, reviewID string, userID uuid.UUID) error
	UnlikeReview(ctx context.Context, reviewID string, userID uuid.UUID) error
	CountLikes(ctx context.Context, reviewID string) (*response.LikeCountResponse, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	log      *zap.Logger
}

func NewLikeService(likeRepo repository.LikeRepository, log *zap.Logger) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		log:      log.With(zap.String("service", "like")),
	}
}

func (s *likeService) LikeReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	id, err := parseReviewID(reviewID)
	if err != nil {
		return err
	}

	return s.likeRepo.Create(ctx, &entity.Like{UserID: userID, ReviewID: id})
}

func (s *likeService) UnlikeReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	id, err := parseReviewID(reviewID)
	if err != nil {
		return err
	}

	return s.likeRepo.Delete(ctx, &entity.Like{UserID: userID, ReviewID: id})
}

func (s *likeService) CountLikes(ctx context.Context, reviewID string) (*response.LikeCountResponse, error) {
	id, err := parseReviewID(reviewID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByReviewID(ctx, id)
	if err != nil {
		s.log.Error("Failed to count likes", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("count likes: %w", err)
	}

	return &response.LikeCountResponse{ReviewID: id.String(), Likes: count}, nil
}
