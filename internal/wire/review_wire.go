package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	likeHandler *adaptor.LikeHandler,
	requireAuth func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/reviews/{reviewId}", reviewHandler.GetReview)
	r.Get("/api/reviews/{reviewId}/likes", likeHandler.CountLikes)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/api/reviews/me", reviewHandler.GetMyReviews)
		r.Post("/api/reviews/me", reviewHandler.CreateReview)

		// owner only; checked in the service
		r.Put("/api/reviews/{reviewId}/me", reviewHandler.UpdateReview)
		r.Delete("/api/reviews/{reviewId}/me", reviewHandler.DeleteReview)

		r.Post("/api/reviews/{reviewId}/like", likeHandler.LikeReview)
		r.Delete("/api/reviews/{reviewId}/like", likeHandler.UnlikeReview)
	})
}
