package adaptor

import (
	"net/http"

	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/auth"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LikeHandler struct {
	service usecase.LikeService
	log     *zap.Logger
}

func NewLikeHandler(service usecase.LikeService, log *zap.Logger) *LikeHandler {
	return &LikeHandler{
		service: service,
		log:     log.With(zap.String("handler", "like")),
	}
}

// LikeReview handles POST /api/reviews/{reviewId}/like. Liking twice is fine.
func (h *LikeHandler) LikeReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.LikeReview(r.Context(), chi.URLParam(r, "reviewId"), userID); err != nil {
		handleServiceError(w, h.log, err, "like review")
		return
	}

	utils.ResponseCreated(w, "", "Review liked", nil)
}

// UnlikeReview handles DELETE /api/reviews/{reviewId}/like
func (h *LikeHandler) UnlikeReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.UnlikeReview(r.Context(), chi.URLParam(r, "reviewId"), userID); err != nil {
		handleServiceError(w, h.log, err, "unlike review")
		return
	}

	utils.ResponseNoContent(w)
}

// CountLikes handles GET /api/reviews/{reviewId}/likes
func (h *LikeHandler) CountLikes(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountLikes(r.Context(), chi.URLParam(r, "reviewId"))
	if err != nil {
		handleServiceError(w, h.log, err, "count likes")
		return
	}

	utils.ResponseSuccess(w, "success", count)
}
