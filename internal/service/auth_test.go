package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/healthjournal/internal/apperr"
)

const secret = "test-secret"

func TestIssueAndVerifyToken(t *testing.T) {
	auth := NewAuthService(secret, time.Hour)

	token, expiresAt, err := auth.IssueToken("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	identity, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.WithinDuration(t, expiresAt, identity.ExpiresAt, time.Second)
}

func TestIssueTokenRequiresUser(t *testing.T) {
	_, _, err := NewAuthService(secret, time.Hour).IssueToken("  ")
	assert.Error(t, err)
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifyTokenRejects(t *testing.T) {
	auth := NewAuthService(secret, time.Hour)
	expired, _, err := NewAuthService(secret, -time.Hour).IssueToken("user-1")
	require.NoError(t, err)

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "a.b.c"},
		{"expired", expired},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other"), Claims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}})},
		{"other algorithm", sign(t, jwt.SigningMethodHS512, []byte(secret), Claims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}})},
		{"unsigned", sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, Claims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}})},
		{"missing user id", sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"exp": future.Unix()})},
		{"missing expiry", sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"user_id": "user-1"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.VerifyToken(tt.token)
			require.Error(t, err)
			assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
		})
	}
}
