package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/applock-backend/internal/logger"
	"github.com/sbilibin2017/applock-backend/internal/models"
	"github.com/sbilibin2017/applock-backend/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// GetUserErrorResponse represents an error response for user lookup
// swagger:model GetUserErrorResponse
type GetUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetUserHandler returns an HTTP handler for user lookup.
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} models.UserDB "User"
// @Failure 404 {object} handlers.GetUserErrorResponse "User not found"
// @Router /users/{user_id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			// A malformed id can never reference a user.
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetUserErrorResponse{
				Error: "User not found",
			})
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
