package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/applock-backend/internal/logger"
	"github.com/sbilibin2017/applock-backend/internal/services"
)

// AppRemover defines the interface that the service must implement.
type AppRemover interface {
	RemoveApp(ctx context.Context, userID uuid.UUID, packageName string) error
}

// RemoveAppRequest represents the JSON body for removing a protected app
// swagger:model RemoveAppRequest
type RemoveAppRequest struct {
	// Package name to remove
	// required: true
	// default: com.instagram.android
	PackageName string `json:"package_name"`
}

// RemoveAppResponse represents a successful remove response
// swagger:model RemoveAppResponse
type RemoveAppResponse struct {
	// Success message
	// default: App removed successfully
	Message string `json:"message"`
}

// RemoveAppErrorResponse represents an error response for removing an app
// swagger:model RemoveAppErrorResponse
type RemoveAppErrorResponse struct {
	// Error message
	// default: Profile not found
	Error string `json:"error"`
}

// NewRemoveAppHandler returns an HTTP handler for removing a protected app.
// @Summary Remove a protected app
// @Description Removes every list entry with the given package name. Removing an app that is not in the list succeeds.
// @Tags profiles
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param removeAppRequest body handlers.RemoveAppRequest true "App to remove"
// @Success 200 {object} handlers.RemoveAppResponse "App removed"
// @Failure 404 {object} handlers.RemoveAppErrorResponse "Profile not found"
// @Router /profiles/{user_id}/apps [delete]
func NewRemoveAppHandler(svc AppRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(RemoveAppErrorResponse{
				Error: "Profile not found",
			})
			return
		}

		var req RemoveAppRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RemoveAppErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err = svc.RemoveApp(r.Context(), userID, req.PackageName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RemoveAppErrorResponse{
					Error: "Profile not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RemoveAppErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RemoveAppResponse{
			Message: "App removed successfully",
		})
	}
}
