package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techflow-dev/techflow/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)
	user := domain.User{Id: 7, Email: "alice@example.com", Role: domain.RoleAdmin, DepartmentId: 5}

	tokenString, err := svc.NewToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.DecodeToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["uid"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, true, claims["admin"])
	assert.Equal(t, float64(5), claims["department"])
}

func TestDecodeWrongKey(t *testing.T) {
	tokenString, err := New("secret", time.Hour).NewToken(domain.User{Id: 1})
	require.NoError(t, err)

	_, err = New("other-secret", time.Hour).DecodeToken(tokenString)
	assert.Error(t, err)
}

func TestDecodeExpiredToken(t *testing.T) {
	tokenString, err := New("secret", -time.Minute).NewToken(domain.User{Id: 1})
	require.NoError(t, err)

	_, err = New("secret", -time.Minute).DecodeToken(tokenString)
	assert.Error(t, err)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := New("secret", time.Hour).DecodeToken("not-a-token")
	assert.Error(t, err)
}
