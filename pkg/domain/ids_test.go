package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "promptserver/pkg/domain-errors"
)

func TestParseUserID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		for _, in := range []string{"0", "-1", "-9000"} {
			_, err := ParseUserID(in)
			require.Error(t, err, in)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})

	t.Run("accepts positive id", func(t *testing.T) {
		id, err := ParseUserID("42")
		require.NoError(t, err)
		assert.Equal(t, UserID(42), id)
		assert.Equal(t, "42", id.String())
	})
}

func TestParseID_TrustBoundary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "1; DROP TABLE users;--", true},
		{"Path traversal", "../../1", true},
		{"Null byte injection", "12\x00", true},
		{"Oversized input", strings.Repeat("9", 40), true},
		{"Leading whitespace", " 12", true},
		{"Hex", "0x1f", true},
		{"Overflow", "9223372036854775808", true},
		{"Max int64", "9223372036854775807", false},
		{"Valid", "7", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errPrompt := ParsePromptID(tt.input)
			_, errCategory := ParseCategoryID(tt.input)
			if tt.wantErr {
				require.Error(t, errPrompt)
				require.Error(t, errCategory)
				assert.True(t, dErrors.HasCode(errPrompt, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, errPrompt)
				require.NoError(t, errCategory)
			}
		})
	}
}

func TestParsePromptUUID(t *testing.T) {
	t.Run("rejects nil uuid", func(t *testing.T) {
		_, err := ParsePromptUUID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects malformed", func(t *testing.T) {
		_, err := ParsePromptUUID("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("accepts uppercase", func(t *testing.T) {
		id, err := ParsePromptUUID("550E8400-E29B-41D4-A716-446655440000")
		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})
}
