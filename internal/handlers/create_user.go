package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/applock-backend/internal/logger"
	"github.com/sbilibin2017/applock-backend/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, email, name string) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Name
	// required: true
	// default: Alice
	Name string `json:"name"`
}

// CreateUserErrorResponse represents an error response for user creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// default: invalid request body
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Creates a user and provisions its empty profile (protection off, purple theme, no apps, no password). Duplicate emails are permitted.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 200 {object} models.UserDB "Created user"
// @Failure 400 {object} handlers.CreateUserErrorResponse "Invalid request body"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.CreateUser(r.Context(), req.Email, req.Name)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
