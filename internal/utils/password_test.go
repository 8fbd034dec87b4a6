package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ysphere-server/internal/utils"
)

func TestGenerateInitialPassword(t *testing.T) {
	first, err := utils.GenerateInitialPassword()
	require.NoError(t, err)
	second, err := utils.GenerateInitialPassword()
	require.NoError(t, err)

	assert.Len(t, first, 16)
	assert.NotEqual(t, first, second)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, utils.CheckPassword(hash, "s3cret-password"))
	assert.False(t, utils.CheckPassword(hash, "wrong-password"))
}
