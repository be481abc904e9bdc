package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, requireAuth func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/users/register", authHandler.Register)
	r.Post("/api/users/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(requireAuth).Get("/api/auth", authHandler.ValidateToken)
}
