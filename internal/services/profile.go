package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/applock-backend/internal/logger"
	"github.com/sbilibin2017/applock-backend/internal/models"
)

const (
	// MaxProtectedApps is the cap on a profile's protected app list.
	MaxProtectedApps = 20
	// MaxPasswordLength is the cap on the gate password, in characters.
	MaxPasswordLength = 8
)

// Error variables
var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrAppAlreadyProtected = errors.New("app already protected")
	ErrAppLimitReached     = errors.New("maximum number of protected apps reached")
	ErrPasswordTooLong     = errors.New("password too long")
)

// ProfileReader defines read-only operations for profiles.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	AppendApp(ctx context.Context, userID uuid.UUID, app models.ProtectedApp, limit int) (bool, error)
	RemoveApp(ctx context.Context, userID uuid.UUID, packageName string) (bool, error)
	SetPasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
	UpdateState(ctx context.Context, userID uuid.UUID, state, theme string, clickCount int) error
}

// ProfileCache caches profiles between reads and is invalidated on writes.
type ProfileCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
	Set(ctx context.Context, userID uuid.UUID, profile *models.ProfileDB) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// PasswordHasher derives and verifies gate password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) bool
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ProfileService owns the protected app list, gate password and protection
// state of a user's profile, and publishes audit events for mutations.
type ProfileService struct {
	reader      ProfileReader
	writer      ProfileWriter
	cache       ProfileCache
	hasher      PasswordHasher
	kafkaWriter KafkaWriter
}

// NewProfileService creates a new ProfileService. Cache and Kafka writer are
// optional; a nil cache disables caching and a nil writer disables event
// publishing.
func NewProfileService(
	reader ProfileReader,
	writer ProfileWriter,
	cache ProfileCache,
	hasher PasswordHasher,
	kafkaWriter KafkaWriter,
) *ProfileService {
	return &ProfileService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		hasher:      hasher,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a profile audit event to Kafka. Publishing is
// fire-and-forget: failures are logged, never surfaced to the caller.
func (svc *ProfileService) publishEvent(ctx context.Context, userID uuid.UUID, operation, packageName string) {
	if svc.kafkaWriter == nil {
		return
	}

	event := models.ProfileEvent{
		EventID:     uuid.NewString(),
		UserID:      userID.String(),
		Operation:   operation,
		PackageName: packageName,
		Timestamp:   time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal profile event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish profile event", "event_id", event.EventID, "operation", operation, "error", err)
	} else {
		logger.Log.Infow("profile event published", "event_id", event.EventID, "operation", operation)
	}
}

// invalidateCache drops the cached profile after a mutation. Best effort.
func (svc *ProfileService) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate profile cache", "user_id", userID, "error", err)
	}
}

// getProfile loads a profile, preferring the cache and filling it on a miss.
// Returns ErrProfileNotFound when no profile references the user.
func (svc *ProfileService) getProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("profile cache read failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	profile, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, userID, profile); err != nil {
			logger.Log.Errorw("failed to cache profile", "user_id", userID, "error", err)
		}
	}

	return profile, nil
}

// GetProfile returns the profile referencing the given user id.
func (svc *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	return svc.getProfile(ctx, userID)
}

// AddApp appends an app to the user's protected list. The append itself is a
// single guarded statement, so two concurrent adds cannot both slip past the
// duplicate and limit checks; when the guard rejects the write the profile
// is re-read to classify the reason.
func (svc *ProfileService) AddApp(ctx context.Context, userID uuid.UUID, name, icon, packageName string) error {
	profile, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "err", err)
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	if profile.ProtectedApps.Contains(packageName) {
		return ErrAppAlreadyProtected
	}
	if len(profile.ProtectedApps) >= MaxProtectedApps {
		return ErrAppLimitReached
	}

	app := models.ProtectedApp{
		Name:        name,
		Icon:        icon,
		PackageName: packageName,
		AddedAt:     time.Now().UTC(),
	}

	appended, err := svc.writer.AppendApp(ctx, userID, app, MaxProtectedApps)
	if err != nil {
		logger.Log.Errorw("failed to append app", "user_id", userID, "package_name", packageName, "err", err)
		return err
	}
	if !appended {
		// A concurrent writer changed the list between our read and the
		// guarded append. Re-read to report the right reason.
		fresh, err := svc.reader.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		switch {
		case fresh == nil:
			return ErrProfileNotFound
		case fresh.ProtectedApps.Contains(packageName):
			return ErrAppAlreadyProtected
		default:
			return ErrAppLimitReached
		}
	}

	svc.invalidateCache(ctx, userID)
	svc.publishEvent(ctx, userID, "app_added", packageName)
	return nil
}

// RemoveApp drops every entry matching the package name. Removing an app
// that is not in the list is not an error.
func (svc *ProfileService) RemoveApp(ctx context.Context, userID uuid.UUID, packageName string) error {
	removed, err := svc.writer.RemoveApp(ctx, userID, packageName)
	if err != nil {
		logger.Log.Errorw("failed to remove app", "user_id", userID, "package_name", packageName, "err", err)
		return err
	}
	if !removed {
		return ErrProfileNotFound
	}

	svc.invalidateCache(ctx, userID)
	svc.publishEvent(ctx, userID, "app_removed", packageName)
	return nil
}

// SetPassword hashes and stores the gate password. Passwords longer than
// MaxPasswordLength characters are rejected before hashing; there is no
// minimum length and the empty password is allowed. Setting a password for
// an absent profile is a silent no-op.
func (svc *ProfileService) SetPassword(ctx context.Context, userID uuid.UUID, password string) error {
	if utf8.RuneCountInString(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "user_id", userID, "err", err)
		return err
	}

	if err := svc.writer.SetPasswordHash(ctx, userID, hash); err != nil {
		logger.Log.Errorw("failed to save password hash", "user_id", userID, "err", err)
		return err
	}

	svc.invalidateCache(ctx, userID)
	svc.publishEvent(ctx, userID, "password_set", "")
	return nil
}

// VerifyPassword reports whether the password matches the stored hash.
// A mismatch is not an error.
func (svc *ProfileService) VerifyPassword(ctx context.Context, userID uuid.UUID, password string) (bool, error) {
	profile, err := svc.getProfile(ctx, userID)
	if err != nil {
		return false, err
	}

	return svc.hasher.Verify(profile.PasswordHash, password), nil
}

// UpdateState unconditionally overwrites the protection state, theme and
// click counter. Any string is accepted as the new state and round-trips
// verbatim; unknown values are only logged.
func (svc *ProfileService) UpdateState(ctx context.Context, userID uuid.UUID, state, theme string, clickCount int) error {
	switch state {
	case models.StateOff, models.StateBackground, models.StateActive:
	default:
		logger.Log.Warnw("unknown protection state accepted", "user_id", userID, "protection_state", state)
	}

	if err := svc.writer.UpdateState(ctx, userID, state, theme, clickCount); err != nil {
		logger.Log.Errorw("failed to update state", "user_id", userID, "err", err)
		return err
	}

	svc.invalidateCache(ctx, userID)
	svc.publishEvent(ctx, userID, "state_updated", "")
	return nil
}
