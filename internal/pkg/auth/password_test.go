package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	assert.NoError(t, err)

	assert.True(t, CheckPassword(hashed, "secret123"))
	assert.False(t, CheckPassword(hashed, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	assert.NoError(t, err)
	second, err := HashPassword("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
