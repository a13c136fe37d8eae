package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	maker := NewJWTMaker("test-secret")
	userID := uuid.New()

	token, err := maker.CreateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTMaker("secret-a").CreateToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWTMaker("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewJWTMaker("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
