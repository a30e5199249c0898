package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/applock-backend/internal/logger"
	"github.com/sbilibin2017/applock-backend/internal/models"
)

// ProfileCacheRepository caches profiles in Redis keyed by user id. Entries
// are invalidated after every profile mutation, so a cached profile is never
// older than the last write.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewProfileCacheRepository creates a new repository instance with the given TTL.
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:%s", userID)
}

// Get returns the cached profile for the user, or (nil, nil) on a cache miss.
func (r *ProfileCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	key := profileKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("profile cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var profile models.ProfileDB
	if err := json.Unmarshal(val, &profile); err != nil {
		logger.Log.Errorw("profile cache entry corrupt",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("profile cache read",
		"key", key,
		"result", "hit",
	)

	return &profile, nil
}

// Set caches the profile with the repository's TTL.
func (r *ProfileCacheRepository) Set(ctx context.Context, userID uuid.UUID, profile *models.ProfileDB) error {
	key := profileKey(userID)

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("profile cache write",
		"key", key,
		"error", err,
	)

	return err
}

// Invalidate drops the cached profile. Missing keys are not an error.
func (r *ProfileCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := profileKey(userID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("profile cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
