package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"letters digits and special", "abc123!", true},
		{"uppercase variant", "ABCDEF1!", true},
		{"all special chars accepted", "a1@$!%*?&", true},
		{"no special char", "abc123", false},
		{"too short", "ab1!", false},
		{"no digit", "abcdef!", false},
		{"no letter", "123456!", false},
		{"disallowed punctuation", "abc123#", false},
		{"whitespace rejected", "abc 123!", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.password))
		})
	}
}

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1!", hash)

	assert.True(t, Verify("Secret1!", hash))
	assert.False(t, Verify("wrong-password", hash))
}

func TestHash_Salted(t *testing.T) {
	h1, err := Hash("Secret1!")
	require.NoError(t, err)
	h2, err := Hash("Secret1!")
	require.NoError(t, err)
	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, h1, h2)
}
