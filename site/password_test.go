package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	encoded, err := HashPassword("hunter2!")
	require.NoError(t, err)

	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "pbkdf2:sha256:600000", parts[0])
	assert.Len(t, parts[1], saltLength)
	assert.Len(t, parts[2], 64) // sha256 hex digest
}

func TestCheckPasswordRoundTrip(t *testing.T) {
	encoded, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword(encoded, "correct horse"))
	assert.False(t, CheckPassword(encoded, "wrong horse"))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("", "anything"))
	assert.False(t, CheckPassword("plaintext", "plaintext"))
	assert.False(t, CheckPassword("bcrypt:10$abc$def", "anything"))
	assert.False(t, CheckPassword("pbkdf2:sha256:nope$salt$00", "anything"))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "same password"))
	assert.True(t, CheckPassword(second, "same password"))
}
