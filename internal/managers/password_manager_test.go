package managers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	passwordMgr := NewPasswordManager(bcrypt.MinCost)

	first, err := passwordMgr.HashPassword("correct horse battery")
	require.NoError(t, err)
	second, err := passwordMgr.HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery", first)
	assert.NotEqual(t, first, second, "digests must be salted")
	assert.True(t, passwordMgr.VerifyPassword("correct horse battery", first))
	assert.True(t, passwordMgr.VerifyPassword("correct horse battery", second))
	assert.False(t, passwordMgr.VerifyPassword("wrong horse battery", first))
}

func TestVerifyPasswordWithMalformedDigest(t *testing.T) {
	passwordMgr := NewPasswordManager(bcrypt.MinCost)

	assert.False(t, passwordMgr.VerifyPassword("password", ""))
	assert.False(t, passwordMgr.VerifyPassword("password", "not-a-bcrypt-digest"))
}

func TestNewPasswordManagerClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewPasswordManager(1).(*PasswordManager).cost)
	assert.Equal(t, bcrypt.MaxCost, NewPasswordManager(99).(*PasswordManager).cost)
	assert.Equal(t, 10, NewPasswordManager(10).(*PasswordManager).cost)

	digest, err := NewPasswordManager(1).HashPassword("password")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
