package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedAppList_Value(t *testing.T) {
	t.Run("NilListStoredAsEmptyArray", func(t *testing.T) {
		var l ProtectedAppList
		v, err := l.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(v.([]byte)))
	})

	t.Run("SerializesApps", func(t *testing.T) {
		added := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
		l := ProtectedAppList{{Name: "WhatsApp", Icon: "💬", PackageName: "com.whatsapp", AddedAt: added}}
		v, err := l.Value()
		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"name":"WhatsApp","icon":"💬","package_name":"com.whatsapp","added_at":"2026-08-29T12:00:00Z"}]`,
			string(v.([]byte)))
	})
}

func TestProtectedAppList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		wantLen int
		wantErr bool
	}{
		{name: "Bytes", src: []byte(`[{"name":"A","icon":"x","package_name":"com.a","added_at":"2026-08-29T12:00:00Z"}]`), wantLen: 1},
		{name: "String", src: `[{"name":"A","icon":"x","package_name":"com.a","added_at":"2026-08-29T12:00:00Z"}]`, wantLen: 1},
		{name: "Nil", src: nil, wantLen: 0},
		{name: "EmptyArray", src: []byte(`[]`), wantLen: 0},
		{name: "UnsupportedType", src: 42, wantErr: true},
		{name: "MalformedJSON", src: []byte(`{`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l ProtectedAppList
			err := l.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, l, tt.wantLen)
		})
	}
}

func TestProtectedAppList_Contains(t *testing.T) {
	l := ProtectedAppList{
		{Name: "Instagram", PackageName: "com.instagram.android"},
		{Name: "WhatsApp", PackageName: "com.whatsapp"},
	}

	assert.True(t, l.Contains("com.whatsapp"))
	assert.False(t, l.Contains("com.telegram"))
	// match is case sensitive
	assert.False(t, l.Contains("COM.WHATSAPP"))
	assert.False(t, ProtectedAppList{}.Contains("com.whatsapp"))
}

func TestProfileDB_JSONShape(t *testing.T) {
	added := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	profile := ProfileDB{
		ProtectedApps:   ProtectedAppList{{Name: "A", Icon: "x", PackageName: "com.a", AddedAt: added}},
		PasswordHash:    "100000$aa$bb",
		ProtectionState: StateBackground,
		ClickCount:      3,
		Theme:           ThemeRed,
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	// wire field names consumed by the mobile client
	for _, key := range []string{"id", "user_id", "protected_apps", "password_hash",
		"protection_state", "click_count", "theme", "created_at", "updated_at"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "BACKGROUND", m["protection_state"])
	assert.Equal(t, "red", m["theme"])
	assert.Equal(t, "100000$aa$bb", m["password_hash"])
}
