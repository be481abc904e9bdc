package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

type ReviewResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Username       string    `json:"username"`
	TmdbMovieID    string    `json:"tmdbMovieId"`
	TmdbMovieTitle string    `json:"tmdbMovieTitle"`
	Title          string    `json:"title"`
	ReviewText     string    `json:"reviewText"`
	Rating         int       `json:"rating"`
	Likes          int64     `json:"likes"`
	LikedByMe      *bool     `json:"likedByMe,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type LikeCountResponse struct {
	ReviewID string `json:"reviewId"`
	Likes    int64  `json:"likes"`
}

func ReviewToResponse(view *entity.ReviewView) ReviewResponse {
	return ReviewResponse{
		ID:             view.ID.String(),
		UserID:         view.UserID.String(),
		Username:       view.Username,
		TmdbMovieID:    view.TmdbMovieID,
		TmdbMovieTitle: view.TmdbMovieTitle,
		Title:          view.Title,
		ReviewText:     view.ReviewText,
		Rating:         view.Rating,
		Likes:          view.Likes,
		LikedByMe:      view.LikedByMe,
		CreatedAt:      view.CreatedAt,
	}
}

func ReviewsToResponse(views []entity.ReviewView) []ReviewResponse {
	out := make([]ReviewResponse, len(views))
	for i := range views {
		out[i] = ReviewToResponse(&views[i])
	}
	return out
}
