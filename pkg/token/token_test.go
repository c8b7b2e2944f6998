package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT(42, "leader", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ValidateJWT(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "leader", claims.Role)
	assert.Equal(t, "arena", claims.Issuer)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(42, "leader", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "other-secret")
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	signed, err := GenerateJWT(42, "leader", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("x", "")
	assert.Error(t, err)
}
