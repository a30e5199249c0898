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

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// GetProfileErrorResponse represents an error response for profile lookup
// swagger:model GetProfileErrorResponse
type GetProfileErrorResponse struct {
	// Error message
	// default: Profile not found
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler for profile lookup.
// @Summary Get a user's profile
// @Description Returns the profile holding the protected app list, password hash and protection state.
// @Tags profiles
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} models.ProfileDB "Profile"
// @Failure 404 {object} handlers.GetProfileErrorResponse "Profile not found"
// @Router /profiles/{user_id} [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetProfileErrorResponse{
				Error: "Profile not found",
			})
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetProfileErrorResponse{
					Error: "Profile not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
