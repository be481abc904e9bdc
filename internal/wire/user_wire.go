package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, requireAuth func(http.Handler) http.Handler) {
	r.With(requireAuth).Get("/api/users/me", userHandler.GetMe)
}
