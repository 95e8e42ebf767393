package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, CheckPassword(hash, "correct horse battery"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong password"), ErrWrongPassword)
}

func TestHashPasswordRejectsOversizedInput(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestCheckPasswordRejectsMalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "whatever")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}
