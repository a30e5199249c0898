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

// PasswordVerifier defines the interface that the service must implement.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, userID uuid.UUID, password string) (bool, error)
}

// VerifyPasswordRequest represents the JSON body for verifying the gate password
// swagger:model VerifyPasswordRequest
type VerifyPasswordRequest struct {
	// Password to check
	// required: true
	// default: secure12
	Password string `json:"password"`
}

// VerifyPasswordResponse represents the verification result
// swagger:model VerifyPasswordResponse
type VerifyPasswordResponse struct {
	// Whether the password matches the stored hash
	// default: true
	Valid bool `json:"valid"`
}

// VerifyPasswordErrorResponse represents an error response for verification
// swagger:model VerifyPasswordErrorResponse
type VerifyPasswordErrorResponse struct {
	// Error message
	// default: Profile not found
	Error string `json:"error"`
}

// NewVerifyPasswordHandler returns an HTTP handler for verifying the gate password.
// @Summary Verify the gate password
// @Description Recomputes the hash and compares it to the stored one. A mismatch is a normal 200 response with valid=false.
// @Tags profiles
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param verifyPasswordRequest body handlers.VerifyPasswordRequest true "Password to verify"
// @Success 200 {object} handlers.VerifyPasswordResponse "Verification result"
// @Failure 404 {object} handlers.VerifyPasswordErrorResponse "Profile not found"
// @Router /profiles/{user_id}/verify-password [post]
func NewVerifyPasswordHandler(svc PasswordVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(VerifyPasswordErrorResponse{
				Error: "Profile not found",
			})
			return
		}

		var req VerifyPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyPasswordErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		valid, err := svc.VerifyPassword(r.Context(), userID, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(VerifyPasswordErrorResponse{
					Error: "Profile not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyPasswordErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyPasswordResponse{
			Valid: valid,
		})
	}
}
