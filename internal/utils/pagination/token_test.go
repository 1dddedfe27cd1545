package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2024, 3, 9, 14, 5, 7, 123456789, time.UTC)

	token := EncodeCursor(createdAt, "3f2a9c1e-0000-4000-8000-000000000001")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "/")

	cursor, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(cursor.CreatedAt), "created_at should survive a round trip")
	assert.Equal(t, "3f2a9c1e-0000-4000-8000-000000000001", cursor.ID)
}

func TestEncodeCursorNormalisesToUTC(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	local := time.Date(2024, 3, 9, 15, 5, 7, 0, lagos)

	cursor, err := DecodeCursor(EncodeCursor(local, "abc"))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cursor.CreatedAt.Location())
	assert.True(t, local.Equal(cursor.CreatedAt))
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "!!!"},
		{"missing separator", base64.RawURLEncoding.EncodeToString([]byte("2024-03-09T14:05:07Z"))},
		{"bad time", base64.RawURLEncoding.EncodeToString([]byte("yesterday|x"))},
		{"empty id", base64.RawURLEncoding.EncodeToString([]byte("2024-03-09T14:05:07Z|"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, ClampLimit(0, 20, 100))
	assert.Equal(t, 20, ClampLimit(-5, 20, 100))
	assert.Equal(t, 50, ClampLimit(50, 20, 100))
	assert.Equal(t, 100, ClampLimit(500, 20, 100))
}
