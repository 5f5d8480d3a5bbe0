package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_Valid(t *testing.T) {
	errs := Signup("Ada", "ada@x.com", "Secret1!")
	assert.Empty(t, errs)
}

func TestSignup_AggregatesAllFailures(t *testing.T) {
	errs := Signup("   ", "not-an-email", "weak")
	require.Len(t, errs, 3)

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{"name", "email", "password"}, fields)
}

func TestSignup_SingleFailure(t *testing.T) {
	errs := Signup("Ada", "ada@x.com", "abc123")
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
	assert.Contains(t, errs[0].Message, "special character")
}

func TestSignup_EmptyEmail(t *testing.T) {
	errs := Signup("Ada", "", "Secret1!")
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}
