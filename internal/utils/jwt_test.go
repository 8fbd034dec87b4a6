package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ysphere-server/configs"
	"ysphere-server/internal/utils"
)

func TestUserTokenRoundTrip(t *testing.T) {
	configs.Configs.Secrets.JwtSecret = "test-secret"

	token, err := utils.SignUserToken("656f1c2ab1e2d3c4f5a6b7c8")
	require.NoError(t, err)

	userID, err := utils.ParseUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, "656f1c2ab1e2d3c4f5a6b7c8", userID)
}

func TestParseUserTokenRejectsTampering(t *testing.T) {
	configs.Configs.Secrets.JwtSecret = "test-secret"
	token, err := utils.SignUserToken("656f1c2ab1e2d3c4f5a6b7c8")
	require.NoError(t, err)

	_, err = utils.ParseUserToken(token + "x")
	assert.Error(t, err)

	configs.Configs.Secrets.JwtSecret = "rotated-secret"
	_, err = utils.ParseUserToken(token)
	assert.Error(t, err)
}
