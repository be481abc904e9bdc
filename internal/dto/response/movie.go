package response

// MovieDetailsResponse is TMDb metadata merged with local review statistics.
// AverageRating is null while the movie has no reviews.
type MovieDetailsResponse struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Overview      string   `json:"overview"`
	ReleaseDate   string   `json:"releaseDate"`
	Runtime       int      `json:"runtime"`
	Genres        []string `json:"genres"`
	PosterPath    *string  `json:"posterPath"`
	BackdropPath  *string  `json:"backdropPath"`
	AverageRating *float64 `json:"averageRating"`
	ReviewCount   int64    `json:"reviewCount"`
}

type MoviePageResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"releaseDate"`
	PosterPath  *string `json:"posterPath"`
}

type MoviePageResponse struct {
	Page         int               `json:"page"`
	Results      []MoviePageResult `json:"results"`
	TotalPages   int               `json:"totalPages"`
	TotalResults int               `json:"totalResults"`
}
