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

// PasswordSetter defines the interface that the service must implement.
type PasswordSetter interface {
	SetPassword(ctx context.Context, userID uuid.UUID, password string) error
}

// SetPasswordRequest represents the JSON body for setting the gate password
// swagger:model SetPasswordRequest
type SetPasswordRequest struct {
	// Password, at most 8 characters
	// required: true
	// default: secure12
	Password string `json:"password"`
}

// SetPasswordResponse represents a successful set-password response
// swagger:model SetPasswordResponse
type SetPasswordResponse struct {
	// Success message
	// default: Password set successfully
	Message string `json:"message"`
}

// SetPasswordErrorResponse represents an error response for setting the password
// swagger:model SetPasswordErrorResponse
type SetPasswordErrorResponse struct {
	// Error message
	// default: Password must be 8 characters or less
	Error string `json:"error"`
}

// NewSetPasswordHandler returns an HTTP handler for setting the gate password.
// @Summary Set the gate password
// @Description Hashes the password with a salted key-stretching hash and stores only the hash. Passwords longer than 8 characters are rejected; there is no minimum length.
// @Tags profiles
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param setPasswordRequest body handlers.SetPasswordRequest true "Password to set"
// @Success 200 {object} handlers.SetPasswordResponse "Password set"
// @Failure 400 {object} handlers.SetPasswordErrorResponse "Password too long or invalid request"
// @Router /profiles/{user_id}/password [post]
func NewSetPasswordHandler(svc PasswordSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetPasswordErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		var req SetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetPasswordErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err = svc.SetPassword(r.Context(), userID, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordTooLong):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SetPasswordErrorResponse{
					Error: "Password must be 8 characters or less",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SetPasswordErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetPasswordResponse{
			Message: "Password set successfully",
		})
	}
}
