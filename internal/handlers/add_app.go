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

// AppAdder defines the interface that the service must implement.
type AppAdder interface {
	AddApp(ctx context.Context, userID uuid.UUID, name, icon, packageName string) error
}

// AddAppRequest represents the JSON body for adding a protected app
// swagger:model AddAppRequest
type AddAppRequest struct {
	// Display name
	// required: true
	// default: Instagram
	Name string `json:"name"`

	// Icon, base64 or emoji
	// required: true
	// default: 📷
	Icon string `json:"icon"`

	// Package name, unique within the profile
	// required: true
	// default: com.instagram.android
	PackageName string `json:"package_name"`
}

// AddAppResponse represents a successful add response
// swagger:model AddAppResponse
type AddAppResponse struct {
	// Success message
	// default: App added successfully
	Message string `json:"message"`
}

// AddAppErrorResponse represents an error response for adding an app
// swagger:model AddAppErrorResponse
type AddAppErrorResponse struct {
	// Error message
	// default: App already protected
	Error string `json:"error"`
}

// NewAddAppHandler returns an HTTP handler for adding a protected app.
// @Summary Add a protected app
// @Description Appends an app to the profile's protected list. The list keeps insertion order, rejects duplicate package names and is capped at 20 entries.
// @Tags profiles
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param addAppRequest body handlers.AddAppRequest true "App to protect"
// @Success 200 {object} handlers.AddAppResponse "App added"
// @Failure 400 {object} handlers.AddAppErrorResponse "Duplicate package name or list at the limit"
// @Failure 404 {object} handlers.AddAppErrorResponse "Profile not found"
// @Router /profiles/{user_id}/apps [post]
func NewAddAppHandler(svc AppAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(AddAppErrorResponse{
				Error: "Profile not found",
			})
			return
		}

		var req AddAppRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddAppErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err = svc.AddApp(r.Context(), userID, req.Name, req.Icon, req.PackageName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AddAppErrorResponse{
					Error: "Profile not found",
				})
			case errors.Is(err, services.ErrAppAlreadyProtected):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddAppErrorResponse{
					Error: "App already protected",
				})
			case errors.Is(err, services.ErrAppLimitReached):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddAppErrorResponse{
					Error: "Maximum 20 apps allowed",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddAppErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddAppResponse{
			Message: "App added successfully",
		})
	}
}
