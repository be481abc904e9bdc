package repository

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/apperror"
	"movie-reviews/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LikeRepository is the like ledger. The (user_id, review_id) primary key
// keeps a pair unique even under concurrent inserts.
type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, like *entity.Like) error
	CountByReviewID(ctx context.Context, reviewID uuid.UUID) (int64, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

// Create is a no-op for an existing pair. A missing review is reported as not found.
func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	query := `
		INSERT INTO review_likes (user_id, review_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, review_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, like.UserID, like.ReviewID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.NotFound("review", like.ReviewID.String())
		}
		r.log.Error("Failed to like review",
			zap.Error(err),
			zap.String("user_id", like.UserID.String()),
			zap.String("review_id", like.ReviewID.String()),
		)
		return fmt.Errorf("like review %s by user %s: %w", like.ReviewID, like.UserID, err)
	}

	return nil
}

// Delete is a no-op when the pair is absent.
func (r *likeRepository) Delete(ctx context.Context, like *entity.Like) error {
	query := `DELETE FROM review_likes WHERE user_id = $1 AND review_id = $2`

	if _, err := r.db.Exec(ctx, query, like.UserID, like.ReviewID); err != nil {
		r.log.Error("Failed to unlike review",
			zap.Error(err),
			zap.String("user_id", like.UserID.String()),
			zap.String("review_id", like.ReviewID.String()),
		)
		return fmt.Errorf("unlike review %s by user %s: %w", like.ReviewID, like.UserID, err)
	}

	return nil
}

func (r *likeRepository) CountByReviewID(ctx context.Context, reviewID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM review_likes WHERE review_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, reviewID).Scan(&count); err != nil {
		r.log.Error("Failed to count likes", zap.Error(err), zap.String("review_id", reviewID.String()))
		return 0, fmt.Errorf("count likes for review %s: %w", reviewID, err)
	}

	return count, nil
}
