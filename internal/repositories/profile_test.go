package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/applock-backend/internal/models"
)

func setupProfilePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE,
		protected_apps JSONB NOT NULL DEFAULT '[]',
		password_hash VARCHAR(255) NOT NULL DEFAULT '',
		protection_state VARCHAR(50) NOT NULL DEFAULT 'OFF',
		click_count INT NOT NULL DEFAULT 0,
		theme VARCHAR(50) NOT NULL DEFAULT 'purple',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newTestProfile(userID uuid.UUID) models.ProfileDB {
	now := time.Now().UTC()
	return models.ProfileDB{
		ProfileID:       uuid.New(),
		UserID:          userID,
		ProtectedApps:   models.ProtectedAppList{},
		PasswordHash:    "",
		ProtectionState: models.StateOff,
		ClickCount:      0,
		Theme:           models.ThemePurple,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func testApp(packageName string) models.ProtectedApp {
	return models.ProtectedApp{
		Name:        packageName,
		Icon:        "📱",
		PackageName: packageName,
		AddedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestProfileWriteRepository_CreateAndRead(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	profile := newTestProfile(userID)
	err := writeRepo.Create(ctx, profile)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		got, err := readRepo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, profile.ProfileID, got.ProfileID)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, models.StateOff, got.ProtectionState)
		assert.Equal(t, models.ThemePurple, got.Theme)
		assert.Empty(t, got.ProtectedApps)
		assert.Empty(t, got.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByUserID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestProfileWriteRepository_AppendApp(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	assert.NoError(t, writeRepo.Create(ctx, newTestProfile(userID)))

	t.Run("Appends", func(t *testing.T) {
		appended, err := writeRepo.AppendApp(ctx, userID, testApp("com.facebook.katana"), 20)
		assert.NoError(t, err)
		assert.True(t, appended)

		got, err := readRepo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.True(t, got.ProtectedApps.Contains("com.facebook.katana"))
	})

	t.Run("RejectsDuplicatePackageName", func(t *testing.T) {
		appended, err := writeRepo.AppendApp(ctx, userID, testApp("com.facebook.katana"), 20)
		assert.NoError(t, err)
		assert.False(t, appended)

		got, err := readRepo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, got.ProtectedApps, 1)
	})

	t.Run("RejectsWhenProfileMissing", func(t *testing.T) {
		appended, err := writeRepo.AppendApp(ctx, uuid.New(), testApp("com.whatsapp"), 20)
		assert.NoError(t, err)
		assert.False(t, appended)
	})

	t.Run("RejectsAtLimit", func(t *testing.T) {
		limitUser := uuid.New()
		assert.NoError(t, writeRepo.Create(ctx, newTestProfile(limitUser)))

		limit := 3
		for i := 0; i < limit; i++ {
			appended, err := writeRepo.AppendApp(ctx, limitUser, testApp(fmt.Sprintf("com.app%d", i)), limit)
			assert.NoError(t, err)
			assert.True(t, appended)
		}

		appended, err := writeRepo.AppendApp(ctx, limitUser, testApp("com.overflow"), limit)
		assert.NoError(t, err)
		assert.False(t, appended)

		got, err := readRepo.GetByUserID(ctx, limitUser)
		assert.NoError(t, err)
		assert.Len(t, got.ProtectedApps, limit)
	})

	t.Run("PreservesInsertionOrder", func(t *testing.T) {
		orderUser := uuid.New()
		assert.NoError(t, writeRepo.Create(ctx, newTestProfile(orderUser)))

		packages := []string{"com.first", "com.second", "com.third"}
		for _, p := range packages {
			appended, err := writeRepo.AppendApp(ctx, orderUser, testApp(p), 20)
			assert.NoError(t, err)
			assert.True(t, appended)
		}

		got, err := readRepo.GetByUserID(ctx, orderUser)
		assert.NoError(t, err)
		assert.Len(t, got.ProtectedApps, len(packages))
		for i, p := range packages {
			assert.Equal(t, p, got.ProtectedApps[i].PackageName)
		}
	})
}

func TestProfileWriteRepository_RemoveApp(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	assert.NoError(t, writeRepo.Create(ctx, newTestProfile(userID)))
	for _, p := range []string{"com.first", "com.second", "com.third"} {
		appended, err := writeRepo.AppendApp(ctx, userID, testApp(p), 20)
		assert.NoError(t, err)
		assert.True(t, appended)
	}

	t.Run("RemovesAndKeepsOrder", func(t *testing.T) {
		removed, err := writeRepo.RemoveApp(ctx, userID, "com.second")
		assert.NoError(t, err)
		assert.True(t, removed)

		got, err := readRepo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, got.ProtectedApps, 2)
		assert.Equal(t, "com.first", got.ProtectedApps[0].PackageName)
		assert.Equal(t, "com.third", got.ProtectedApps[1].PackageName)
	})

	t.Run("AbsentAppIsIdempotent", func(t *testing.T) {
		removed, err := writeRepo.RemoveApp(ctx, userID, "com.nonexistent")
		assert.NoError(t, err)
		assert.True(t, removed)

		got, err := readRepo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, got.ProtectedApps, 2)
	})

	t.Run("MissingProfile", func(t *testing.T) {
		removed, err := writeRepo.RemoveApp(ctx, uuid.New(), "com.first")
		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("RemoveLastLeavesEmptyList", func(t *testing.T) {
		soloUser := uuid.New()
		assert.NoError(t, writeRepo.Create(ctx, newTestProfile(soloUser)))
		appended, err := writeRepo.AppendApp(ctx, soloUser, testApp("com.only"), 20)
		assert.NoError(t, err)
		assert.True(t, appended)

		removed, err := writeRepo.RemoveApp(ctx, soloUser, "com.only")
		assert.NoError(t, err)
		assert.True(t, removed)

		got, err := readRepo.GetByUserID(ctx, soloUser)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got.ProtectedApps)
	})
}

func TestProfileWriteRepository_SetPasswordHash(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	assert.NoError(t, writeRepo.Create(ctx, newTestProfile(userID)))

	t.Run("Stores", func(t *testing.T) {
		err := writeRepo.SetPasswordHash(ctx, userID, "100000$aa$bb")
		assert.NoError(t, err)

		got, err := readRepo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, "100000$aa$bb", got.PasswordHash)
	})

	t.Run("MissingProfileIsNoOp", func(t *testing.T) {
		err := writeRepo.SetPasswordHash(ctx, uuid.New(), "100000$cc$dd")
		assert.NoError(t, err)
	})
}

func TestProfileWriteRepository_UpdateState(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	assert.NoError(t, writeRepo.Create(ctx, newTestProfile(userID)))

	t.Run("Overwrites", func(t *testing.T) {
		err := writeRepo.UpdateState(ctx, userID, models.StateActive, models.ThemeRed, 7)
		assert.NoError(t, err)

		got, err := readRepo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, models.StateActive, got.ProtectionState)
		assert.Equal(t, models.ThemeRed, got.Theme)
		assert.Equal(t, 7, got.ClickCount)
	})

	t.Run("StoresUnknownStateVerbatim", func(t *testing.T) {
		err := writeRepo.UpdateState(ctx, userID, "PARANOID", models.ThemePurple, 0)
		assert.NoError(t, err)

		got, err := readRepo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, "PARANOID", got.ProtectionState)
	})

	t.Run("MissingProfileIsNoOp", func(t *testing.T) {
		err := writeRepo.UpdateState(ctx, uuid.New(), models.StateOff, models.ThemePurple, 0)
		assert.NoError(t, err)
	})
}
