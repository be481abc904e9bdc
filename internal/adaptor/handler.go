package adaptor

import (
	"net/http"

	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/apperror"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Review *ReviewHandler
	Like   *LikeHandler
	Movie  *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Review: NewReviewHandler(service.Review, log),
		Like:   NewLikeHandler(service.Like, log),
		Movie:  NewMovieHandler(service.Movie, log),
	}
}

// handleServiceError maps the error kind to a status. Domain messages are
// returned to the client; anything else is logged and hidden behind a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr, ok := apperror.As(err)
	if !ok {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error(operation+" failed", zap.Error(err), zap.String("kind", string(appErr.Kind)))
	} else {
		log.Warn(operation+" failed", zap.Error(err), zap.String("kind", string(appErr.Kind)))
	}

	utils.ResponseError(w, status, appErr.Message)
}

// decodeAndValidate writes the 400 itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}
