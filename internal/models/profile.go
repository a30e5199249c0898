package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Protection states of the lock feature. The state is stored as a plain
// string and unknown values are accepted (see UpdateState in services).
const (
	StateOff        = "OFF"
	StateBackground = "BACKGROUND"
	StateActive     = "ACTIVE"
)

// Known UI themes. The theme is not validated.
const (
	ThemePurple = "purple"
	ThemeRed    = "red"
)

// ProtectedApp is one gated application inside a profile's list.
type ProtectedApp struct {
	Name        string    `json:"name"`         // Display name
	Icon        string    `json:"icon"`         // Opaque icon string (base64 or emoji)
	PackageName string    `json:"package_name"` // Unique key within a profile
	AddedAt     time.Time `json:"added_at"`     // When the app was added
}

// ProtectedAppList is an ordered list of protected apps stored as a JSONB
// array column. Insertion order is preserved.
type ProtectedAppList []ProtectedApp

// Value serializes the list for a JSONB column. A nil list is stored as [].
func (l ProtectedAppList) Value() (driver.Value, error) {
	if l == nil {
		l = ProtectedAppList{}
	}
	return json.Marshal(l)
}

// Scan deserializes the JSONB column value.
func (l *ProtectedAppList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = ProtectedAppList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ProtectedAppList", src)
	}
}

// Contains reports whether the list has an app with the given package name.
// The comparison is a case-sensitive exact match.
func (l ProtectedAppList) Contains(packageName string) bool {
	for _, app := range l {
		if app.PackageName == packageName {
			return true
		}
	}
	return false
}

// ProfileDB represents a per-user profile record in the database
type ProfileDB struct {
	ProfileID       uuid.UUID        `json:"id" db:"id"`                             // Primary key
	UserID          uuid.UUID        `json:"user_id" db:"user_id"`                   // One profile per user
	ProtectedApps   ProtectedAppList `json:"protected_apps" db:"protected_apps"`     // Ordered, max 20 entries
	PasswordHash    string           `json:"password_hash" db:"password_hash"`       // Empty until a password is set
	ProtectionState string           `json:"protection_state" db:"protection_state"` // OFF, BACKGROUND or ACTIVE
	ClickCount      int              `json:"click_count" db:"click_count"`           // Client-supplied counter
	Theme           string           `json:"theme" db:"theme"`                       // purple or red
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`             // Last mutation timestamp
}
