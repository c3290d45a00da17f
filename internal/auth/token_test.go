package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(42, "founder@example.com", "secret", 30*time.Minute, time.Now())
	require.NoError(t, err)

	userID, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseToken_Rejects(t *testing.T) {
	valid, err := IssueToken(7, "a@b.c", "secret", time.Hour, time.Now())
	require.NoError(t, err)
	expired, err := IssueToken(7, "a@b.c", "secret", time.Minute, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "7",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other"},
		{"expired", expired, "secret"},
		{"garbage", "not-a-jwt", "secret"},
		{"non numeric subject", badSubject, "secret"},
		{"missing expiry", noExpiry, "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
