package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/applock-backend/internal/logger"
	"github.com/sbilibin2017/applock-backend/internal/models"
)

type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile referencing the given user id, or
// (nil, nil) when no such profile exists.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT id, user_id, protected_apps, password_hash, protection_state,
		       click_count, theme, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &profile, query, userID)

	logger.Log.Infow("profile read",
		"query", squash(query),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

type ProfileWriteRepository struct {
	db *sqlx.DB
}

func NewProfileWriteRepository(db *sqlx.DB) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db}
}

// Create inserts a new profile record. It participates in the transaction
// bound to the context, so user and profile creation commit together.
func (r *ProfileWriteRepository) Create(ctx context.Context, profile models.ProfileDB) error {
	const query = `
		INSERT INTO profiles (id, user_id, protected_apps, password_hash,
		                      protection_state, click_count, theme, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		profile.ProfileID, profile.UserID, profile.ProtectedApps,
		profile.PasswordHash, profile.ProtectionState, profile.ClickCount,
		profile.Theme, profile.CreatedAt, profile.UpdatedAt,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("profile write",
		"query", squash(query),
		"args", args,
		"error", err,
	)

	return err
}

// AppendApp appends the app to the profile's list in a single guarded
// statement: the append only happens if the profile exists, the package name
// is not already present, and the list is below the limit. The guards run
// inside one UPDATE, so concurrent appends cannot exceed the limit or insert
// a duplicate. It returns false when no row was updated.
func (r *ProfileWriteRepository) AppendApp(ctx context.Context, userID uuid.UUID, app models.ProtectedApp, limit int) (bool, error) {
	const query = `
		UPDATE profiles
		SET protected_apps = protected_apps || $2::jsonb,
		    updated_at = NOW()
		WHERE user_id = $1
		  AND NOT protected_apps @> $3::jsonb
		  AND jsonb_array_length(protected_apps) < $4
	`

	element, err := json.Marshal(models.ProtectedAppList{app})
	if err != nil {
		return false, err
	}
	probe, err := json.Marshal([]map[string]string{{"package_name": app.PackageName}})
	if err != nil {
		return false, err
	}

	args := []any{userID, element, probe, limit}
	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("profile write",
		"query", squash(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// RemoveApp drops every list entry matching the package name in a single
// statement, preserving the order of the remaining entries, and bumps
// updated_at whether or not anything matched. It returns false when the
// profile does not exist.
func (r *ProfileWriteRepository) RemoveApp(ctx context.Context, userID uuid.UUID, packageName string) (bool, error) {
	const query = `
		UPDATE profiles
		SET protected_apps = COALESCE(
		        (SELECT jsonb_agg(app ORDER BY ord)
		         FROM jsonb_array_elements(protected_apps) WITH ORDINALITY AS t(app, ord)
		         WHERE app->>'package_name' <> $2),
		        '[]'::jsonb),
		    updated_at = NOW()
		WHERE user_id = $1
	`

	args := []any{userID, packageName}
	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("profile write",
		"query", squash(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// SetPasswordHash stores a new password hash. Writing to an absent profile
// is a silent no-op.
func (r *ProfileWriteRepository) SetPasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	const query = `
		UPDATE profiles
		SET password_hash = $2,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, hash}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("profile write",
		"query", squash(query),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// UpdateState overwrites the protection state, theme and click counter.
// Writing to an absent profile is a silent no-op.
func (r *ProfileWriteRepository) UpdateState(ctx context.Context, userID uuid.UUID, state, theme string, clickCount int) error {
	const query = `
		UPDATE profiles
		SET protection_state = $2,
		    theme = $3,
		    click_count = $4,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, state, theme, clickCount}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("profile write",
		"query", squash(query),
		"args", args,
		"error", err,
	)

	return err
}
