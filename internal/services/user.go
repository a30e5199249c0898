package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/applock-backend/internal/logger"
	"github.com/sbilibin2017/applock-backend/internal/models"
)

// Error variables
var (
	ErrUserNotFound = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
}

// ProfileProvisioner creates the empty profile that accompanies every new user.
type ProfileProvisioner interface {
	Create(ctx context.Context, profile models.ProfileDB) error
}

// UserService handles user creation and lookup.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	profiles ProfileProvisioner
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, profiles ProfileProvisioner) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		profiles: profiles,
	}
}

// CreateUser persists a new user and provisions its empty profile
// (protection off, purple theme, no apps, no password). Duplicate emails are
// permitted. Both inserts share the transaction bound to the context when
// one is present.
func (svc *UserService) CreateUser(ctx context.Context, email, name string) (*models.UserDB, error) {
	now := time.Now().UTC()

	user := models.UserDB{
		UserID:    uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	profile := models.ProfileDB{
		ProfileID:       uuid.New(),
		UserID:          user.UserID,
		ProtectedApps:   models.ProtectedAppList{},
		PasswordHash:    "",
		ProtectionState: models.StateOff,
		ClickCount:      0,
		Theme:           models.ThemePurple,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := svc.profiles.Create(ctx, profile); err != nil {
		logger.Log.Errorw("failed to provision profile", "user_id", user.UserID, "err", err)
		return nil, err
	}

	return &user, nil
}

// GetUser returns the user with the given id.
func (svc *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
