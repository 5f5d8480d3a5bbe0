package token

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationCode_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := NewVerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestNewResetToken_Format(t *testing.T) {
	tok, err := NewResetToken()
	require.NoError(t, err)
	assert.Len(t, tok, 20)
	assert.Regexp(t, "^[0-9a-f]+$", tok)
}

func TestNewResetToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tok, err := NewResetToken()
		require.NoError(t, err)
		assert.False(t, seen[tok], "reset tokens must not repeat")
		seen[tok] = true
	}
}
