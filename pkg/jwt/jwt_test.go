package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.GenerateToken(42, "Admin", "admin@cuentista.tech")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "admin@cuentista.tech", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateToken(1, "Admin", "a@b.c")
	require.NoError(t, err)

	_, err = NewManager("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewManager("secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
