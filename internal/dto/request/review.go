package request

type CreateReviewRequest struct {
	TmdbMovieID    string `json:"tmdbMovieId" validate:"required,max=20"`
	TmdbMovieTitle string `json:"tmdbMovieTitle" validate:"required,max=255"`
	Title          string `json:"title" validate:"required,min=1,max=50"`
	ReviewText     string `json:"reviewText" validate:"required,min=50,max=1000"`
	Rating         int    `json:"rating" validate:"required,min=1,max=10"`
}

// UpdateReviewRequest replaces all three fields; partial updates are not supported.
type UpdateReviewRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=50"`
	ReviewText string `json:"reviewText" validate:"required,min=50,max=1000"`
	Rating     int    `json:"rating" validate:"required,min=1,max=10"`
}
