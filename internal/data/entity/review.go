package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID         uuid.UUID `db:"user_id"`
	TmdbMovieID    string    `db:"tmdb_movie_id"`
	TmdbMovieTitle string    `db:"tmdb_movie_title"`
	Title          string    `db:"title"`
	ReviewText     string    `db:"review_text"`
	Rating         int       `db:"rating"` // 1-10
}

// ReviewView is a review joined with its author and live like count.
// LikedByMe is nil when the reader is anonymous.
type ReviewView struct {
	Review
	Username  string `db:"username"`
	Likes     int64  `db:"likes"`
	LikedByMe *bool  `db:"liked_by_me"`
}

// MovieReviewStats is nil-averaged when a movie has no local reviews.
type MovieReviewStats struct {
	ReviewCount   int64
	AverageRating *float64
}
