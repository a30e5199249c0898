package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/applock-backend/internal/logger"
)

// StateUpdater defines the interface that the service must implement.
type StateUpdater interface {
	UpdateState(ctx context.Context, userID uuid.UUID, state, theme string, clickCount int) error
}

// UpdateStateRequest represents the JSON body for updating protection state
// swagger:model UpdateStateRequest
type UpdateStateRequest struct {
	// Protection state, conventionally OFF, BACKGROUND or ACTIVE
	// required: true
	// default: ACTIVE
	ProtectionState string `json:"protection_state"`

	// UI theme, conventionally purple or red
	// required: true
	// default: purple
	Theme string `json:"theme"`

	// Client-supplied click counter
	// required: true
	// default: 0
	ClickCount int `json:"click_count"`
}

// UpdateStateResponse represents a successful state update response
// swagger:model UpdateStateResponse
type UpdateStateResponse struct {
	// Success message
	// default: State updated successfully
	Message string `json:"message"`
}

// UpdateStateErrorResponse represents an error response for state updates
// swagger:model UpdateStateErrorResponse
type UpdateStateErrorResponse struct {
	// Error message
	// default: invalid request body
	Error string `json:"error"`
}

// NewUpdateStateHandler returns an HTTP handler for updating protection state.
// @Summary Update protection state and preferences
// @Description Unconditionally overwrites protection state, theme and click counter. No transition rules are enforced; any state string round-trips verbatim.
// @Tags profiles
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param updateStateRequest body handlers.UpdateStateRequest true "New state"
// @Success 200 {object} handlers.UpdateStateResponse "State updated"
// @Failure 400 {object} handlers.UpdateStateErrorResponse "Invalid request"
// @Router /profiles/{user_id}/state [put]
func NewUpdateStateHandler(svc StateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateStateErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		var req UpdateStateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateStateErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err = svc.UpdateState(r.Context(), userID, req.ProtectionState, req.Theme, req.ClickCount)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UpdateStateErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateStateResponse{
			Message: "State updated successfully",
		})
	}
}
