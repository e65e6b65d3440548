package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ComparesOK(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret"))
}

func TestComparePassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrPasswordMismatch)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "s3cret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
