package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/apperror"
	"movie-reviews/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*entity.ReviewView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ReviewView, error)
	ListByMovie(ctx context.Context, tmdbMovieID string, viewerID *uuid.UUID) ([]entity.ReviewView, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetMovieReviewStats(ctx context.Context, tmdbMovieID string) (*entity.MovieReviewStats, error)
}

// reviewViewSelect joins the author and counts likes at read time.
// $1 in the liked_by_me column is the viewer id, or NULL for anonymous readers.
const reviewViewSelect = `
	SELECT r.id, r.user_id, r.tmdb_movie_id, r.tmdb_movie_title, r.title, r.review_text,
	       r.rating, r.created_at, u.username,
	       (SELECT COUNT(*) FROM review_likes l WHERE l.review_id = r.id) AS likes,
	       CASE WHEN $1::uuid IS NULL THEN NULL
	            ELSE EXISTS (SELECT 1 FROM review_likes l WHERE l.review_id = r.id AND l.user_id = $1::uuid)
	       END AS liked_by_me
	FROM reviews r
	JOIN users u ON u.id = r.user_id
`

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, tmdb_movie_id, tmdb_movie_title, title, review_text, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.TmdbMovieID,
		review.TmdbMovieTitle,
		review.Title,
		review.ReviewText,
		review.Rating,
		review.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("tmdb_movie_id", review.TmdbMovieID),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.TmdbMovieID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, tmdb_movie_id, tmdb_movie_title, title, review_text, rating, created_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.TmdbMovieID,
		&review.TmdbMovieTitle,
		&review.Title,
		&review.ReviewText,
		&review.Rating,
		&review.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID", zap.Error(err), zap.String("review_id", id.String()))
		return nil, fmt.Errorf("find review by ID %s: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*entity.ReviewView, error) {
	query := reviewViewSelect + ` WHERE r.id = $2`

	view, err := scanReviewView(r.db.QueryRow(ctx, query, nil, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review view", zap.Error(err), zap.String("review_id", id.String()))
		return nil, fmt.Errorf("find review view %s: %w", id, err)
	}

	return view, nil
}

// ListByUser returns the user's reviews oldest first. UUIDv7 ids sort by creation time.
func (r *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ReviewView, error) {
	query := reviewViewSelect + ` WHERE r.user_id = $2 ORDER BY r.id ASC`

	rows, err := r.db.Query(ctx, query, nil, userID)
	if err != nil {
		r.log.Error("Failed to list reviews by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list reviews by user %s: %w", userID, err)
	}

	return r.collectViews(rows)
}

// ListByMovie returns the movie's reviews newest first. LikedByMe is set only for a known viewer.
func (r *reviewRepository) ListByMovie(ctx context.Context, tmdbMovieID string, viewerID *uuid.UUID) ([]entity.ReviewView, error) {
	query := reviewViewSelect + ` WHERE r.tmdb_movie_id = $2 ORDER BY r.id DESC`

	rows, err := r.db.Query(ctx, query, viewerID, tmdbMovieID)
	if err != nil {
		r.log.Error("Failed to list reviews by movie", zap.Error(err), zap.String("tmdb_movie_id", tmdbMovieID))
		return nil, fmt.Errorf("list reviews by movie %s: %w", tmdbMovieID, err)
	}

	return r.collectViews(rows)
}

// Update replaces title, text and rating together.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET title = $2, review_text = $3, rating = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Title,
		review.ReviewText,
		review.Rating,
	)
	if err != nil {
		r.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", review.ID.String()))
		return fmt.Errorf("update review %s: %w", review.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("review", review.ID.String())
	}

	return nil
}

// Delete removes the review; its likes go with it through ON DELETE CASCADE.
func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", id.String()))
		return fmt.Errorf("delete review %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("review", id.String())
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

// GetMovieReviewStats leaves AverageRating nil when there are no reviews.
func (r *reviewRepository) GetMovieReviewStats(ctx context.Context, tmdbMovieID string) (*entity.MovieReviewStats, error) {
	query := `
		SELECT COUNT(*) AS review_count, AVG(rating)::float8 AS avg_rating
		FROM reviews
		WHERE tmdb_movie_id = $1
	`

	var stats entity.MovieReviewStats
	err := r.db.QueryRow(ctx, query, tmdbMovieID).Scan(&stats.ReviewCount, &stats.AverageRating)
	if err != nil {
		r.log.Error("Failed to get movie review stats", zap.Error(err), zap.String("tmdb_movie_id", tmdbMovieID))
		return nil, fmt.Errorf("get movie review stats for %s: %w", tmdbMovieID, err)
	}

	return &stats, nil
}

func (r *reviewRepository) collectViews(rows pgx.Rows) ([]entity.ReviewView, error) {
	defer rows.Close()

	views := make([]entity.ReviewView, 0)
	for rows.Next() {
		view, err := scanReviewView(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return views, nil
}

func scanReviewView(row pgx.Row) (*entity.ReviewView, error) {
	var v entity.ReviewView
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.TmdbMovieID,
		&v.TmdbMovieTitle,
		&v.Title,
		&v.ReviewText,
		&v.Rating,
		&v.CreatedAt,
		&v.Username,
		&v.Likes,
		&v.LikedByMe,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
